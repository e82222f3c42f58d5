package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate vérifie les valeurs qui rendraient une commande inutilisable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}

	var errs []error
	if c.Cleaner.PreviewLines < 0 {
		errs = append(errs, fmt.Errorf("cleaner.preview_lines doit être positif (reçu %d)", c.Cleaner.PreviewLines))
	}
	if c.Cleaner.SampleChars < 0 {
		errs = append(errs, fmt.Errorf("cleaner.sample_chars doit être positif (reçu %d)", c.Cleaner.SampleChars))
	}
	if c.Fetch.TempStem == "" {
		errs = append(errs, errors.New("fetch.temp_stem ne peut pas être vide"))
	} else if strings.ContainsAny(c.Fetch.TempStem, `/\`) {
		errs = append(errs, fmt.Errorf("fetch.temp_stem ne doit pas contenir de séparateur : %q", c.Fetch.TempStem))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format inconnu : %q (text ou json)", c.LogFormat))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level inconnu : %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
