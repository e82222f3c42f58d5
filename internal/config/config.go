package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/captools/internal/assets"
	"github.com/patrickprogramme/captools/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const (
	CurrentConfigVersion = 1
	DefaultFileName      = "captools.yaml"
	DefaultURL           = "https://www.youtube.com/watch?v=yAj5EnyuakI"
)

// struct pour les paramètres de configuration
type Config struct {
	// Journalisation
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Nettoyage
	Cleaner struct {
		InputFile          string `yaml:"input_file"`
		OutputFile         string `yaml:"output_file"`
		PreviewLines       int    `yaml:"preview_lines"`
		SampleChars        int    `yaml:"sample_chars"`
		PreviewBeforeClean bool   `yaml:"preview_before_clean"`
	} `yaml:"cleaner"`

	// Récupération des sous-titres
	Fetch struct {
		DefaultURL      string `yaml:"default_url"`
		Language        string `yaml:"language"`
		TempDir         string `yaml:"temp_dir"`
		TempStem        string `yaml:"temp_stem"`
		UseClipboardURL bool   `yaml:"use_clipboard_url"`
	} `yaml:"fetch"`

	// yt-dlp
	YtDlp struct {
		Name         string `yaml:"name"`
		Path         string `yaml:"path"`
		ShowWarnings bool   `yaml:"show_warnings"`

		// ResolvedPath contient le chemin effectif vers l'exécutable (vide => PATH)
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Default retourne la configuration par défaut (fallback si l'asset embarqué est manquant)
func Default() *Config {
	c := &Config{}

	c.LogLevel = "info"
	c.LogFormat = "text"

	c.Cleaner.InputFile = "captions_en.txt"
	c.Cleaner.OutputFile = "cleaned_captions.txt"
	c.Cleaner.PreviewLines = 10
	c.Cleaner.SampleChars = 500
	c.Cleaner.PreviewBeforeClean = true

	c.Fetch.DefaultURL = DefaultURL
	c.Fetch.Language = "en"
	c.Fetch.TempDir = "."
	c.Fetch.TempStem = "temp_subtitle"
	c.Fetch.UseClipboardURL = false

	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false

	c.ConfigVersion = CurrentConfigVersion

	c.normalizeConfig()
	return c
}

// DefaultPath retourne <UserConfigDir>/captools/captools.yaml,
// ou captools.yaml dans le dossier courant si le dossier utilisateur est inconnu.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultFileName
	}
	return filepath.Join(dir, "captools", DefaultFileName)
}

// Path retourne le chemin du fichier chargé (vide si la config n'a pas été lue depuis un fichier).
func (c *Config) Path() string {
	return c.configFilePath
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	// si le fichier n'existe pas -> créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration %s invalide : %w", path, err)
	}
	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels), crée le dossier parent
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	c.Cleaner.InputFile = strings.TrimSpace(c.Cleaner.InputFile)
	if c.Cleaner.InputFile == "" {
		c.Cleaner.InputFile = "captions_en.txt"
	}
	c.Cleaner.OutputFile = strings.TrimSpace(c.Cleaner.OutputFile)
	if c.Cleaner.OutputFile == "" {
		c.Cleaner.OutputFile = "cleaned_captions.txt"
	}

	c.Fetch.DefaultURL = strings.TrimSpace(c.Fetch.DefaultURL)
	if c.Fetch.DefaultURL == "" {
		c.Fetch.DefaultURL = DefaultURL
	}
	c.Fetch.Language = strings.TrimSpace(c.Fetch.Language)
	if c.Fetch.Language == "" {
		c.Fetch.Language = "en"
	}
	c.Fetch.TempDir = filepath.Clean(strings.TrimSpace(c.Fetch.TempDir))
	c.Fetch.TempStem = strings.TrimSpace(c.Fetch.TempStem)

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// si cfg.Path est vide -> recherche dans le PATH au moment de l'exécution
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
