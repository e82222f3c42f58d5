package ui

import "context"

type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// Confirm pose une question oui/non. Une réponse vide vaut non.
	Confirm(ctx context.Context, question string) (bool, error)

	// IsInteractive indique si l'entrée standard est un terminal.
	IsInteractive() bool
}
