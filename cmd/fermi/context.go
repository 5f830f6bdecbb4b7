package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fermi/internal/logging"
	"fermi/internal/settings"
)

type commandContext struct {
	configFlag    *string
	modeFlag      *string
	logLevelFlag  *string
	logFormatFlag *string

	settingsOnce sync.Once
	settings     *settings.Settings
	settingsPath string
	settingsErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, modeFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		modeFlag:      modeFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		level := "info"
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		format := "console"
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			format = *c.logFormatFlag
		}
		c.logger, c.loggerErr = logging.New(logging.Options{Level: level, Format: format})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) runMode() (settings.RunMode, error) {
	if c.modeFlag == nil || strings.TrimSpace(*c.modeFlag) == "" {
		return settings.ModeFixedSource, nil
	}
	mode := settings.RunMode(strings.ToLower(strings.TrimSpace(*c.modeFlag)))
	switch mode {
	case settings.ModeFixedSource, settings.ModeEigenvalue, settings.ModePlotting, settings.ModeParticleRestart:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown run mode: %s", *c.modeFlag)
	}
}

func (c *commandContext) ensureSettings() (*settings.Settings, error) {
	c.settingsOnce.Do(func() {
		logger, err := c.ensureLogger()
		if err != nil {
			c.settingsErr = err
			return
		}

		mode, err := c.runMode()
		if err != nil {
			c.settingsErr = err
			return
		}

		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, _, err := settings.LoadForMode(path, mode, logger)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = cfg
		c.settingsPath = resolvedPath
	})
	return c.settings, c.settingsErr
}
