package cleaner

import (
	"regexp"
	"strings"
	"unicode"
)

// SentencesPerParagraph est la taille fixe d'un paragraphe reconstruit.
const SentencesPerParagraph = 4

// Step est une transformation pure texte -> texte du pipeline de nettoyage.
type Step struct {
	Name  string
	Apply func(string) string
}

var (
	// timestamps inline des sous-titres auto : <01:13:29.320>
	timestampTag = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`)
	cueTag       = regexp.MustCompile(`</?c>`)
	anyTag       = regexp.MustCompile(`<[^>]+>`)

	spaceBeforePunct = regexp.MustCompile(`\s+([,.!?;:])`)
	sentenceJoin     = regexp.MustCompile(`([.!?])\s*([A-Z])`)
	sentenceBreak    = regexp.MustCompile(`[.!?]\s+`)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Steps retourne la liste ordonnée des étapes. L'ordre est contractuel :
// chaque étape suppose la sortie de la précédente.
func Steps() []Step {
	return []Step{
		{Name: "remove-timestamps", Apply: RemoveTimestamps},
		{Name: "remove-cue-tags", Apply: RemoveCueTags},
		{Name: "remove-tags", Apply: RemoveTags},
		{Name: "dedup-lines", Apply: DedupLines},
		{Name: "collapse-whitespace", Apply: CollapseWhitespace},
		{Name: "fix-punctuation-spacing", Apply: FixPunctuationSpacing},
		{Name: "ensure-sentence-spacing", Apply: EnsureSentenceSpacing},
		{Name: "reflow", Apply: Reflow},
	}
}

// Clean applique toutes les étapes dans l'ordre.
func Clean(text string) string {
	for _, s := range Steps() {
		text = s.Apply(text)
	}
	return text
}

// RemoveTimestamps supprime les marqueurs <HH:MM:SS.mmm>.
func RemoveTimestamps(s string) string {
	return timestampTag.ReplaceAllString(s, "")
}

// RemoveCueTags supprime les balises <c> et </c>.
func RemoveCueTags(s string) string {
	return cueTag.ReplaceAllString(s, "")
}

// RemoveTags supprime toute balise <...> restante (non imbriquée).
func RemoveTags(s string) string {
	return anyTag.ReplaceAllString(s, "")
}

// DedupLines découpe en lignes, trim chaque ligne, ignore les lignes vides
// et retire une ligne identique à la dernière ligne conservée.
// La comparaison se fait uniquement avec la ligne précédente gardée.
// "\r\n" et "\r" seuls comptent comme fins de ligne.
func DedupLines(s string) string {
	lines := strings.Split(lineBreaks.Replace(s), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(kept) > 0 && kept[len(kept)-1] == line {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// CollapseWhitespace remplace toute suite d'espaces (retours ligne compris)
// par un espace unique.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// FixPunctuationSpacing retire les espaces placés avant , . ! ? ; :
func FixPunctuationSpacing(s string) string {
	return spaceBeforePunct.ReplaceAllString(s, "${1}")
}

// EnsureSentenceSpacing impose un espace unique entre une ponctuation de fin
// de phrase et la majuscule qui suit.
func EnsureSentenceSpacing(s string) string {
	return sentenceJoin.ReplaceAllString(s, "${1} ${2}")
}

// SplitSentences coupe après chaque . ! ou ? suivi d'espaces.
// La ponctuation reste attachée à la phrase de gauche.
func SplitSentences(s string) []string {
	var out []string
	start := 0
	for _, m := range sentenceBreak.FindAllStringIndex(s, -1) {
		out = append(out, s[start:m[0]+1])
		start = m[1]
	}
	return append(out, s[start:])
}

// GroupParagraphs regroupe les phrases par paquets de size, le reste formant
// un dernier paragraphe. Les phrases vides sont ignorées.
func GroupParagraphs(sentences []string, size int) []string {
	if size <= 0 {
		size = SentencesPerParagraph
	}
	var paragraphs []string
	current := make([]string, 0, size)
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		current = append(current, sentence)
		if len(current) >= size {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return paragraphs
}

// Reflow découpe en phrases, regroupe en paragraphes de 4 phrases et les
// sépare par une ligne vide.
func Reflow(s string) string {
	return strings.Join(GroupParagraphs(SplitSentences(s), SentencesPerParagraph), "\n\n")
}
