package yt

import (
	"context"
	"fmt"
	"strings"
)

// GetVersion exécute le binaire yt-dlp avec l'option --version et retourne sa sortie.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, y.logger, y.exe(), "--version")
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
