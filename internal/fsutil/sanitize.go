package fsutil

import (
	"regexp"
	"strings"
)

// limite de longueur de la chaine
const max = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne de caractères pour en faire un nom de fichier valide.
// Étapes :
// - Remplace ":" par "-" explicitement
// - Remplace les autres caractères interdits par "_"
// - Réduit les espaces et supprime les points terminaux
// - Limite la longueur du nom
// - Fournit un nom par défaut si la chaîne est vide
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, "_")
	clean = strings.TrimSpace(clean)
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if len(clean) > max {
		clean = clean[:max]
	}
	return clean
}
