package yt

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/patrickprogramme/captools/pkg/model"
)

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe, vide => recherche de Name dans le PATH
	Config YtDlpConfig

	logger *slog.Logger
}

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe (ou vide).
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig, logger *slog.Logger) *YtDlp {
	if logger == nil {
		logger = slog.Default()
	}
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
		logger: logger.With("component", "yt-dlp"),
	}
}

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// CheckBinary vérifie que le binaire existe : chemin configuré, sinon recherche dans le PATH.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path == "" {
		p, err := exec.LookPath(y.Name)
		if err != nil {
			return fmt.Errorf("%s introuvable dans le PATH : %w", y.Name, err)
		}
		y.logger.Debug("yt-dlp trouvé dans le PATH", "path", p)
		return nil
	}

	info, err := os.Stat(y.Path)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %w", y.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// CaptionLanguages exécute `yt-dlp -j <url>` et extrait les langues de sous-titres.
func (y *YtDlp) CaptionLanguages(ctx context.Context, url string) (model.CaptionTracks, error) {
	var empty model.CaptionTracks
	out, err := runCommand(ctx, y.logger, y.exe(), y.Config.BuildInfoArgs(url)...)
	if err != nil {
		return empty, fmt.Errorf("yt-dlp dump json failed: %w", err)
	}

	jsonLine, warnings, err := splitJSONOutput(out)
	for _, w := range warnings {
		y.logger.Warn("avertissement yt-dlp", "message", w)
	}
	if err != nil {
		return empty, err
	}
	return ParseCaptionTracks(jsonLine)
}

// DownloadCaption demande à yt-dlp d'écrire la piste req au format vtt.
// Le fichier n'est pas vérifié ici : c'est à l'appelant de le chercher.
func (y *YtDlp) DownloadCaption(ctx context.Context, url string, req model.CaptionRequest) error {
	if _, err := runCommand(ctx, y.logger, y.exe(), y.Config.BuildCaptionArgs(url, req)...); err != nil {
		return fmt.Errorf("téléchargement des sous-titres %s (%s): %w", req.Lang, req.Source, err)
	}
	return nil
}
