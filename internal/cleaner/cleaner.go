// Package cleaner transforme un texte de sous-titres brut (timestamps inline,
// balises, lignes répétées) en texte lisible découpé en paragraphes.
//
// Le nettoyage est une suite ordonnée d'étapes pures (voir Steps) ; seules
// CleanFile et PreviewFile touchent au disque.
package cleaner

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/patrickprogramme/captools/internal/fsutil"
)

const (
	DefaultInputFile  = "captions_en.txt"
	DefaultOutputFile = "cleaned_captions.txt"
	filePerm          = 0o644
)

var ErrInputNotFound = errors.New("fichier d'entrée introuvable")

// Report résume un nettoyage de fichier.
type Report struct {
	InputPath   string
	OutputPath  string
	OriginalLen int // en caractères
	CleanedLen  int // en caractères
	Text        string
}

// CleanFile lit inputPath, nettoie son contenu et l'écrit dans outputPath.
// Si inputPath n'existe pas, rien n'est écrit et ErrInputNotFound est retournée.
func CleanFile(inputPath, outputPath string) (Report, error) {
	var empty Report
	if inputPath == "" {
		inputPath = DefaultInputFile
	}
	if outputPath == "" {
		outputPath = DefaultOutputFile
	}

	content, err := readInput(inputPath)
	if err != nil {
		return empty, err
	}

	cleaned := Clean(content)
	if err := fsutil.WriteFileAtomic(outputPath, []byte(cleaned), filePerm); err != nil {
		return empty, fmt.Errorf("écriture de %s: %w", outputPath, err)
	}

	return Report{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		OriginalLen: utf8.RuneCountInString(content),
		CleanedLen:  utf8.RuneCountInString(cleaned),
		Text:        cleaned,
	}, nil
}

// readInput lit le fichier en distinguant l'absence du fichier des autres erreurs IO.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("lecture de %s: %w", path, err)
	}
	return string(data), nil
}

// Sample retourne les max premiers caractères de text, suivis de "..." si tronqué.
func Sample(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	rs := []rune(text)
	return string(rs[:max]) + "..."
}
