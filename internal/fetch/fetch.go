// Package fetch récupère le texte des sous-titres d'une vidéo pour une langue.
//
// La résolution des pistes et le téléchargement sont délégués à une Source
// (yt-dlp en pratique) ; ce package décide seulement quelle piste demander
// (manuelle avant automatique) et gère la durée de vie du fichier temporaire.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/captools/internal/fsutil"
	"github.com/patrickprogramme/captools/internal/vtt"
	"github.com/patrickprogramme/captools/pkg/model"
	"golang.org/x/text/language"
)

const (
	DefaultTempDir  = "."
	DefaultTempStem = "temp_subtitle"
)

// Erreurs exportées
var (
	ErrLanguageUnavailable = errors.New("aucun sous-titre dans la langue demandée")
	ErrCaptionFileMissing  = errors.New("fichier de sous-titres introuvable après téléchargement")
)

// LanguageUnavailableError porte la liste des langues réellement disponibles,
// dans l'ordre des métadonnées (manuelles puis automatiques), et les pistes
// listées pour la vidéo.
type LanguageUnavailableError struct {
	Lang      string
	Available []string
	Tracks    model.CaptionTracks
}

func (e *LanguageUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (disponibles : %v)", ErrLanguageUnavailable, e.Lang, e.Available)
}

func (e *LanguageUnavailableError) Unwrap() error {
	return ErrLanguageUnavailable
}

// Source est le service externe : lister les langues, matérialiser une piste.
type Source interface {
	CaptionLanguages(ctx context.Context, url string) (model.CaptionTracks, error)
	DownloadCaption(ctx context.Context, url string, req model.CaptionRequest) error
}

// Options configure l'emplacement du fichier vtt temporaire.
type Options struct {
	TempDir  string
	TempStem string
}

// Result est le texte extrait et la piste d'où il vient.
type Result struct {
	Text   string
	Lang   string
	Source model.SubSource
	Title  string
}

type Fetcher struct {
	src    Source
	opts   Options
	logger *slog.Logger
}

func New(src Source, opts Options, logger *slog.Logger) *Fetcher {
	if opts.TempDir == "" {
		opts.TempDir = DefaultTempDir
	}
	if opts.TempStem == "" {
		opts.TempStem = DefaultTempStem
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{src: src, opts: opts, logger: logger.With("component", "fetch")}
}

// Fetch résout la piste de lang pour url, la télécharge et retourne son texte.
// Le fichier vtt temporaire est supprimé dans tous les cas après le téléchargement.
func (f *Fetcher) Fetch(ctx context.Context, url, lang string) (Result, error) {
	var empty Result
	requested := strings.TrimSpace(lang)
	lang = NormalizeLang(requested)
	logger := f.logger.With("url", url, "lang", lang)

	tracks, err := f.src.CaptionLanguages(ctx, url)
	if err != nil {
		return empty, fmt.Errorf("liste des sous-titres: %w", err)
	}

	source, ok := SelectSource(tracks, lang)
	if !ok && requested != lang {
		// clé publiée avec une casse non standard : on la demande telle quelle
		if source, ok = SelectSource(tracks, requested); ok {
			lang = requested
		}
	}
	if !ok {
		return empty, &LanguageUnavailableError{Lang: lang, Available: tracks.Available(), Tracks: tracks}
	}
	logger.Info("piste sélectionnée", "source", string(source), "title", tracks.Title)

	req := model.CaptionRequest{
		Lang:   lang,
		Source: source,
		Dir:    f.opts.TempDir,
		Stem:   f.opts.TempStem,
	}
	path := filepath.Join(req.Dir, req.ExpectedFilename())
	// yt-dlp peut avoir écrit le fichier même en cas d'échec
	defer f.removeTemp(logger, path)

	if err := f.src.DownloadCaption(ctx, url, req); err != nil {
		return empty, err
	}

	exists, err := fsutil.FileExists(path)
	if err != nil {
		return empty, fmt.Errorf("recherche de %s: %w", path, err)
	}
	if !exists {
		return empty, fmt.Errorf("%w: %s", ErrCaptionFileMissing, path)
	}

	text, err := vtt.ExtractFile(path)
	if err != nil {
		return empty, err
	}

	return Result{
		Text:   text,
		Lang:   lang,
		Source: source,
		Title:  tracks.Title,
	}, nil
}

func (f *Fetcher) removeTemp(logger *slog.Logger, path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		logger.Debug("fichier temporaire supprimé", "path", path)
	case errors.Is(err, os.ErrNotExist):
	default:
		logger.Warn("suppression du fichier temporaire impossible", "path", path, "error", err)
	}
}

// SelectSource préfère les sous-titres manuels aux automatiques.
func SelectSource(tracks model.CaptionTracks, lang string) (model.SubSource, bool) {
	switch {
	case tracks.HasManual(lang):
		return model.SubSourceManual, true
	case tracks.HasAutomatic(lang):
		return model.SubSourceAutomatic, true
	default:
		return model.SubSourceUnknown, false
	}
}

// NormalizeLang corrige la casse d'un code langue BCP 47 ("EN" -> "en",
// "pt-br" -> "pt-BR") sans remplacer les codes obsolètes : YouTube publie
// encore "iw" ou "in", qui doivent rester tels quels. Les codes qui ne se
// parsent pas sont rendus tels quels, espaces retirés.
func NormalizeLang(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	tag, err := language.Raw.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}

// OutputFilename retourne le nom du fichier de sauvegarde : captions_<lang>.txt
func OutputFilename(lang string) string {
	return fsutil.SanitizeFilename("captions_" + lang + model.FormatTXT.Extension())
}
