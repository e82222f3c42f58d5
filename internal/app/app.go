package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/patrickprogramme/captools/internal/clipboard"
	"github.com/patrickprogramme/captools/internal/config"
	"github.com/patrickprogramme/captools/internal/fetch"
	"github.com/patrickprogramme/captools/internal/ui"
	"github.com/patrickprogramme/captools/internal/yt"
)

const filePerm = 0o644

// SourceFactory construit la source de sous-titres au moment du fetch.
// Le binaire yt-dlp n'est donc vérifié que par la commande qui en a besoin.
type SourceFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fetch.Source, error)

// App orchestre les différentes dépendances (UI, presse-papier, yt-dlp, FS...)
type App struct {
	cfg       *config.Config
	ui        ui.Interface
	logger    *slog.Logger
	clip      clipboard.Interface
	newSource SourceFactory
}

// New construit l'application avec les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:       cfg,
		ui:        uiClient,
		logger:    logger,
		clip:      clipboard.System(),
		newSource: ytDlpSource,
	}
}

// ytDlpSource initialise yt-dlp (binaire + version) et l'utilise comme source.
func ytDlpSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (fetch.Source, error) {
	dl, version, err := yt.InitYtDlp(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("yt-dlp initialisé", "version", version)
	return dl, nil
}

// fail affiche l'erreur à l'utilisateur puis la retourne telle quelle.
func (a *App) fail(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) {
		a.ui.PrintError(ctx, "opération annulée")
		return err
	}
	a.ui.PrintError(ctx, fmt.Sprintf("Erreur : %v", err))
	return err
}

// resolveURL applique la priorité argument > presse-papier > URL par défaut.
// Le presse-papier n'est retenu que s'il contient une URL YouTube.
func (a *App) resolveURL(ctx context.Context, arg string) string {
	if arg != "" {
		return arg
	}
	if a.cfg.Fetch.UseClipboardURL && a.clip != nil {
		text, err := a.clip.ReadAll()
		switch {
		case err != nil:
			a.logger.Debug("lecture du presse-papier impossible", "error", err)
		case yt.IsYouTubeURL(text):
			a.ui.PrintInfo(ctx, "URL récupérée depuis le presse-papier.")
			return text
		}
	}
	return a.cfg.Fetch.DefaultURL
}
