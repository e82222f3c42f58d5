package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// Interface permet de remplacer le presse-papier système dans les tests.
type Interface interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type system struct{}

// System retourne le presse-papier du système.
func System() Interface {
	return system{}
}

func (system) ReadAll() (string, error) {
	return ReadAll()
}

func (system) WriteAll(text string) error {
	return WriteAll(text)
}

// ErrUnsupported : aucun outil de presse-papier n'est disponible (xclip, xsel...).
var ErrUnsupported = errors.New("presse-papier indisponible (installez xclip, xsel ou wl-clipboard)")

// ReadAll lit le contenu texte du presse-papier, BOM et espaces de bord retirés.
func ReadAll() (string, error) {
	if Unsupported() {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimPrefix(text, "\ufeff")), nil
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	if Unsupported() {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Unsupported indique si aucun outil de presse-papier n'est disponible (xclip, xsel...).
func Unsupported() bool {
	return clipboard.Unsupported
}
