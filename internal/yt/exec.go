package yt

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// runCommand exécute une commande externe et journalise sa durée.
// La sortie combinée (stdout+stderr) est jointe à l'erreur pour le diagnostic.
func runCommand(ctx context.Context, logger *slog.Logger, name string, args ...string) ([]byte, error) {
	logger = logger.With("command", name, "args", strings.Join(args, " "))
	logger.Debug("exécution de la commande")

	start := time.Now()
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("échec de la commande", "duration", elapsed, "error", err, "output", string(out))
		return out, fmt.Errorf("%s a échoué : %w, output: %s", name, err, strings.TrimSpace(string(out)))
	}
	logger.Debug("commande terminée", "duration", elapsed)
	return out, nil
}
