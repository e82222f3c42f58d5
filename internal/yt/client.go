package yt

import (
	"context"

	"github.com/patrickprogramme/captools/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	// CaptionLanguages liste les langues manuelles et automatiques d'une vidéo.
	CaptionLanguages(ctx context.Context, url string) (model.CaptionTracks, error)
	// DownloadCaption écrit <req.Dir>/<req.Stem>.<req.Lang>.vtt
	DownloadCaption(ctx context.Context, url string, req model.CaptionRequest) error
}
