package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag, logLevelFlag, logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "captools",
		Short:         "Nettoyage et récupération de sous-titres YouTube",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipApp(cmd) {
				return nil
			}
			_, err := ctx.ensureApp()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Chemin du fichier de configuration")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Niveau de log (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Format des logs (text, json)")

	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newFetchCommand(ctx))

	return rootCmd
}

// shouldSkipApp évite de créer la config pour l'aide et la complétion shell.
func shouldSkipApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return !cmd.HasParent()
}

// reportedError marque une erreur déjà affichée à l'utilisateur par l'application.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}
