package yt

import (
	"path/filepath"

	"github.com/patrickprogramme/captools/pkg/model"
)

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	NoWarnings bool // true => ajouter --no-warnings
	NoProgress bool
	NoUpdate   bool
	NoConfig   bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		NoWarnings: !showWarning,
		NoProgress: true,
		NoUpdate:   true,
		NoConfig:   true, // valeur par défaut : ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// BuildInfoArgs construit les arguments pour `yt-dlp -j` (métadonnées seules).
func (c *YtDlpConfig) BuildInfoArgs(url string) []string {
	args := make([]string, 0, 8)
	// mettre --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "-j", "--skip-download")
	args = c.appendQuiet(args)
	return append(args, url)
}

// BuildCaptionArgs construit les arguments pour télécharger une seule piste vtt.
// yt-dlp nomme le fichier <Dir>/<Stem>.<Lang>.vtt à partir du template -o.
func (c *YtDlpConfig) BuildCaptionArgs(url string, req model.CaptionRequest) []string {
	args := make([]string, 0, 16)
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "--skip-download")
	if req.Source == model.SubSourceManual {
		args = append(args, "--write-subs")
	} else {
		args = append(args, "--write-auto-subs")
	}
	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	args = append(args,
		"--sub-langs", req.Lang,
		"--sub-format", string(model.FormatVTT),
		"-o", filepath.Join(dir, req.Stem),
	)
	args = c.appendQuiet(args)
	return append(args, url)
}

func (c *YtDlpConfig) appendQuiet(args []string) []string {
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}
