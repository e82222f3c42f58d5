package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/captools/internal/cleaner"
	"github.com/patrickprogramme/captools/internal/fetch"
	"github.com/patrickprogramme/captools/internal/fsutil"
)

// CleanOptions regroupe les paramètres de la commande clean.
type CleanOptions struct {
	Input   string
	Output  string
	Preview bool
	Copy    bool
}

// SaveMode décide si le texte récupéré est écrit sur disque.
type SaveMode int

const (
	SaveAsk SaveMode = iota
	SaveAlways
	SaveNever
)

// FetchOptions regroupe les paramètres de la commande fetch.
type FetchOptions struct {
	URL    string
	Lang   string
	Save   SaveMode
	Output string
}

// Clean nettoie le fichier d'entrée et affiche un compte-rendu.
// Si le fichier d'entrée manque, rien n'est écrit.
func (a *App) Clean(ctx context.Context, opts CleanOptions) (cleaner.Report, error) {
	var empty cleaner.Report
	input := firstNonEmpty(opts.Input, a.cfg.Cleaner.InputFile, cleaner.DefaultInputFile)
	output := firstNonEmpty(opts.Output, a.cfg.Cleaner.OutputFile, cleaner.DefaultOutputFile)

	a.ui.PrintInfo(ctx, "Caption Cleaner")
	a.ui.PrintInfo(ctx, strings.Repeat("=", 30))

	exists, err := fsutil.FileExists(input)
	if err != nil {
		return empty, a.fail(ctx, err)
	}
	if !exists {
		a.ui.PrintError(ctx, fmt.Sprintf("Fichier d'entrée '%s' introuvable !", input))
		a.ui.PrintError(ctx, "Vérifiez que le fichier de sous-titres se trouve dans le répertoire courant.")
		return empty, fmt.Errorf("%w: %s", cleaner.ErrInputNotFound, input)
	}

	if opts.Preview {
		a.ui.PrintInfo(ctx, "Aperçu du nettoyage :")
		if err := a.Preview(ctx, input, a.cfg.Cleaner.PreviewLines); err != nil {
			return empty, err
		}
		a.ui.PrintInfo(ctx, strings.Repeat("=", 50))
	}

	report, err := cleaner.CleanFile(input, output)
	if err != nil {
		return empty, a.fail(ctx, err)
	}
	a.logger.Info("sous-titres nettoyés",
		"input", report.InputPath,
		"output", report.OutputPath,
		"original_len", report.OriginalLen,
		"cleaned_len", report.CleanedLen,
	)

	a.ui.PrintInfo(ctx, fmt.Sprintf("Longueur d'origine : %d caractères", report.OriginalLen))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Longueur nettoyée : %d caractères", report.CleanedLen))
	a.ui.PrintInfo(ctx, "✅ Sous-titres nettoyés avec succès !")
	a.ui.PrintInfo(ctx, fmt.Sprintf("📁 Entrée : %s", report.InputPath))
	a.ui.PrintInfo(ctx, fmt.Sprintf("📄 Sortie : %s", report.OutputPath))
	a.ui.PrintInfo(ctx, "\n=== EXTRAIT DU TEXTE NETTOYÉ ===")
	a.ui.PrintInfo(ctx, cleaner.Sample(report.Text, a.cfg.Cleaner.SampleChars))

	if opts.Copy {
		if err := a.clip.WriteAll(report.Text); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible : %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Texte nettoyé copié dans le presse-papier.")
		}
	}
	return report, nil
}

// Preview affiche les n premières lignes avant et après nettoyage.
func (a *App) Preview(ctx context.Context, input string, n int) error {
	input = firstNonEmpty(input, a.cfg.Cleaner.InputFile, cleaner.DefaultInputFile)
	if n <= 0 {
		n = cleaner.DefaultPreviewLines
	}
	out, err := cleaner.PreviewFile(input, n)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.ui.PrintInfo(ctx, out)
	return nil
}

// Fetch récupère les sous-titres d'une vidéo, les affiche et les sauvegarde
// selon opts.Save.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) (fetch.Result, error) {
	var empty fetch.Result
	url := a.resolveURL(ctx, opts.URL)
	lang := fetch.NormalizeLang(firstNonEmpty(opts.Lang, a.cfg.Fetch.Language, "en"))

	a.ui.PrintInfo(ctx, fmt.Sprintf("\nExtraction des sous-titres de : %s", url))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Langue : %s", lang))
	a.ui.PrintInfo(ctx, strings.Repeat("-", 50))

	src, err := a.newSource(ctx, a.cfg, a.logger)
	if err != nil {
		return empty, a.fail(ctx, err)
	}

	f := fetch.New(src, fetch.Options{
		TempDir:  a.cfg.Fetch.TempDir,
		TempStem: a.cfg.Fetch.TempStem,
	}, a.logger)

	res, err := f.Fetch(ctx, url, lang)
	if err != nil {
		var unavailable *fetch.LanguageUnavailableError
		if errors.As(err, &unavailable) {
			a.ui.PrintInfo(ctx, unavailable.Tracks.Pretty())
			a.ui.PrintError(ctx, fmt.Sprintf("Aucun sous-titre en %s", unavailable.Lang))
			a.ui.PrintError(ctx, fmt.Sprintf("Langues disponibles : %v", unavailable.Available))
			return empty, err
		}
		return empty, a.fail(ctx, err)
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Titre : %s", res.Title))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Piste : %s (%s)", res.Source, res.Lang))
	a.ui.PrintInfo(ctx, "\n=== SOUS-TITRES ===")
	a.ui.PrintInfo(ctx, res.Text)

	save, err := a.shouldSave(ctx, opts.Save)
	if err != nil {
		return empty, a.fail(ctx, err)
	}
	if !save {
		return res, nil
	}

	path := firstNonEmpty(opts.Output, fetch.OutputFilename(res.Lang))
	if err := fsutil.WriteFileAtomic(path, []byte(res.Text), filePerm); err != nil {
		return empty, a.fail(ctx, fmt.Errorf("écriture de %s: %w", path, err))
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Sous-titres enregistrés dans : %s", path))
	return res, nil
}

// shouldSave ne pose la question que si l'entrée standard est un terminal.
func (a *App) shouldSave(ctx context.Context, mode SaveMode) (bool, error) {
	switch mode {
	case SaveAlways:
		return true, nil
	case SaveNever:
		return false, nil
	}
	if !a.ui.IsInteractive() {
		a.logger.Debug("entrée non interactive, sous-titres non enregistrés")
		return false, nil
	}
	return a.ui.Confirm(ctx, "\nEnregistrer les sous-titres dans un fichier ?")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
