package model

import (
	"fmt"
	"slices"
	"strings"
)

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = généré automatiquement par Youtube
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// CaptionTracks liste les langues de sous-titres disponibles pour une vidéo.
// L'ordre des langues est celui des métadonnées source, il n'est jamais trié.
type CaptionTracks struct {
	Title     string
	Manual    []string
	Automatic []string
}

// HasManual indique si lang fait partie des sous-titres manuels.
func (c CaptionTracks) HasManual(lang string) bool {
	return slices.Contains(c.Manual, lang)
}

// HasAutomatic indique si lang fait partie des sous-titres automatiques.
func (c CaptionTracks) HasAutomatic(lang string) bool {
	return slices.Contains(c.Automatic, lang)
}

// Available retourne les langues manuelles suivies des automatiques, sans dédoublonnage.
func (c CaptionTracks) Available() []string {
	out := make([]string, 0, len(c.Manual)+len(c.Automatic))
	out = append(out, c.Manual...)
	out = append(out, c.Automatic...)
	return out
}

// Pretty retourne une fiche multi-lignes simple.
func (c CaptionTracks) Pretty() string {
	formatLangs := func(list []string) string {
		if len(list) == 0 {
			return "(aucun)"
		}
		return strings.Join(list, ", ")
	}
	title := c.Title
	if title == "" {
		title = "Unknown"
	}
	return fmt.Sprintf(
		"Captions:\n"+
			"  Title      : %q\n"+
			"  ManualSubs : %s\n"+
			"  AutoSubs   : %s\n",
		title,
		formatLangs(c.Manual),
		formatLangs(c.Automatic),
	)
}

// CaptionRequest décrit la piste à matérialiser sur disque :
// le fichier attendu est <Dir>/<Stem>.<Lang>.vtt
type CaptionRequest struct {
	Lang   string
	Source SubSource
	Dir    string
	Stem   string
}

// ExpectedFilename retourne le nom de fichier produit pour la requête (sans Dir).
func (r CaptionRequest) ExpectedFilename() string {
	return r.Stem + "." + r.Lang + FormatVTT.Extension()
}
