package main

import (
	"github.com/patrickprogramme/captools/internal/app"
	"github.com/spf13/cobra"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var input, output string
	var noPreview, copyText bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Nettoie un fichier de sous-titres et l'écrit en paragraphes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			_, err = a.Clean(cmd.Context(), app.CleanOptions{
				Input:   input,
				Output:  output,
				Preview: ctx.config.Cleaner.PreviewBeforeClean && !noPreview,
				Copy:    copyText,
			})
			return reported(err)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Fichier de sous-titres à nettoyer")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Fichier de sortie")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Ne pas afficher l'aperçu avant nettoyage")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copier le texte nettoyé dans le presse-papier")
	return cmd
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var input string
	var lines int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Affiche les premières lignes avant et après nettoyage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lines") {
				lines = ctx.config.Cleaner.PreviewLines
			}
			return reported(a.Preview(cmd.Context(), input, lines))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Fichier de sous-titres à prévisualiser")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Nombre de lignes affichées")
	return cmd
}

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var lang, output string
	var save, noSave bool

	cmd := &cobra.Command{
		Use:   "fetch [URL]",
		Short: "Récupère les sous-titres d'une vidéo YouTube via yt-dlp",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			opts := app.FetchOptions{
				Lang:   lang,
				Save:   saveMode(save, noSave),
				Output: output,
			}
			if len(args) == 1 {
				opts.URL = args[0]
			}
			_, err = a.Fetch(cmd.Context(), opts)
			return reported(err)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Code langue des sous-titres (ex. en, fr)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Fichier de sauvegarde (défaut captions_<lang>.txt)")
	cmd.Flags().BoolVar(&save, "save", false, "Enregistrer sans demander")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Ne pas enregistrer")
	cmd.MarkFlagsMutuallyExclusive("save", "no-save")
	return cmd
}

func saveMode(save, noSave bool) app.SaveMode {
	switch {
	case save:
		return app.SaveAlways
	case noSave:
		return app.SaveNever
	default:
		return app.SaveAsk
	}
}
