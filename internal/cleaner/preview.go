package cleaner

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const DefaultPreviewLines = 10

// PreviewResult contient les n premières lignes avant et après nettoyage.
type PreviewResult struct {
	Original []string
	Cleaned  []string
}

// Preview calcule l'aperçu avant/après sur les n premières lignes.
// n <= 0 utilise DefaultPreviewLines.
func Preview(raw string, n int) PreviewResult {
	if n <= 0 {
		n = DefaultPreviewLines
	}
	return PreviewResult{
		Original: firstLines(raw, n),
		Cleaned:  firstLines(Clean(raw), n),
	}
}

// PreviewFile lit path et rend l'aperçu. Aucune écriture.
func PreviewFile(path string, n int) (string, error) {
	if path == "" {
		path = DefaultInputFile
	}
	content, err := readInput(path)
	if err != nil {
		return "", err
	}
	return RenderPreview(Preview(content, n)), nil
}

// RenderPreview affiche les deux blocs sous forme de tableaux, une ligne par
// ligne de texte, affichée entre guillemets pour rendre visibles les espaces.
func RenderPreview(p PreviewResult) string {
	var b strings.Builder
	b.WriteString(renderLines(fmt.Sprintf("ORIGINAL CONTENT (first %d lines)", len(p.Original)), p.Original))
	b.WriteString("\n\n")
	b.WriteString(renderLines(fmt.Sprintf("CLEANED CONTENT (first %d lines)", len(p.Cleaned)), p.Cleaned))
	b.WriteString("\n")
	return b.String()
}

func renderLines(title string, lines []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"#", "Line"})
	for i, line := range lines {
		tw.AppendRow(table.Row{i + 1, fmt.Sprintf("%q", line)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// firstLines découpe sur "\n" et garde au plus n lignes.
func firstLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
