// Package logger configures the logrus logger used by the superhex command.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/superhex/internal/config"
)

// New returns a logger writing to out. Level and format come from cfg;
// non-empty LOG_LEVEL and LOG_FORMAT environment variables take precedence.
// An unknown level falls back to info.
func New(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	levelName := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		levelName = env
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := cfg.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
