package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type terminalUI struct {
	reader      *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

// NewTerminal construit l'UI sur stdin/stdout/stderr.
func NewTerminal() Interface {
	return NewTerminalWith(os.Stdin, os.Stdout, os.Stderr, isTerminal(os.Stdin))
}

// NewTerminalWith permet d'injecter les flux (tests).
func NewTerminalWith(in io.Reader, out, errOut io.Writer, interactive bool) Interface {
	return &terminalUI{
		reader:      bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		interactive: interactive,
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

func (t *terminalUI) IsInteractive() bool {
	return t.interactive
}

func (t *terminalUI) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(t.out, "%s (y/n): ", question)
	input, err := t.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("lecture stdin: %w", err)
	}
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes", "o", "oui":
		return true, nil
	default:
		return false, nil
	}
}
