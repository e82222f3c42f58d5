package main

import (
	"os"
	"strings"
	"sync"

	"github.com/patrickprogramme/captools/internal/app"
	"github.com/patrickprogramme/captools/internal/config"
	"github.com/patrickprogramme/captools/internal/logging"
	"github.com/patrickprogramme/captools/internal/ui"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	once   sync.Once
	config *config.Config
	app    *app.App
	err    error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureApp charge la config, applique les flags de log et construit l'application.
func (c *commandContext) ensureApp() (*app.App, error) {
	c.once.Do(func() {
		cfg, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.err = err
			return
		}
		if v := flagValue(c.logLevelFlag); v != "" {
			cfg.LogLevel = v
		}
		if v := flagValue(c.logFormatFlag); v != "" {
			cfg.LogFormat = v
		}

		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
		if err != nil {
			c.err = err
			return
		}
		logger.Debug("configuration chargée", "path", cfg.Path())

		c.config = cfg
		c.app = app.New(cfg, ui.NewTerminal(), logger)
	})
	return c.app, c.err
}

func flagValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
