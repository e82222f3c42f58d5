// Package vtt extrait le texte brut d'un fichier de sous-titres WEBVTT.
//
// C'est un filtre ligne à ligne : pas de déduplication ni de reconstruction
// de phrases (voir le package cleaner pour ça).
package vtt

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// timestampReplacer retire les séparateurs de temps pour repérer les lignes
// qui ne contiennent qu'un timestamp ou un numéro de cue.
var timestampReplacer = strings.NewReplacer(":", "", ".", "", ",", "")

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ExtractLines garde les lignes de texte et les joint par "\n".
// Sont ignorées : l'en-tête WEBVTT, les NOTE, les lignes de timing (-->),
// les lignes vides, les lignes purement numériques/timestamp et celles
// commençant par une balise.
func ExtractLines(lines []string) string {
	captions := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if skipLine(line) {
			continue
		}
		captions = append(captions, line)
	}
	return strings.Join(captions, "\n")
}

// Extract découpe content en lignes ("\n", "\r\n" ou "\r") puis applique ExtractLines.
func Extract(content string) string {
	return ExtractLines(strings.Split(lineBreaks.Replace(content), "\n"))
}

// ExtractFile lit un fichier .vtt et en extrait le texte.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("lecture du fichier vtt %s: %w", path, err)
	}
	return Extract(string(data)), nil
}

func skipLine(line string) bool {
	switch {
	case line == "":
		return true
	case strings.HasPrefix(line, "WEBVTT"), strings.HasPrefix(line, "NOTE"):
		return true
	case strings.Contains(line, "-->"):
		return true
	case isTimestampShaped(line):
		return true
	case strings.HasPrefix(line, "<"):
		return true
	}
	return false
}

// isTimestampShaped : uniquement des chiffres une fois ":" "." "," retirés.
// "::" donne une chaîne vide et n'est donc pas considéré comme un timestamp.
func isTimestampShaped(line string) bool {
	digits := timestampReplacer.Replace(line)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
