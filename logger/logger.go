package logger

import (
	"HealthHubTerminal/config"
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

var rotator *lumberjack.Logger

/*
* Production logs as JSON, anything else as text
* Write to a rotating file when one is configured, otherwise stderr so prompts on stdout stay clean
* Every entry of this run carries the same session id
 */
func Init(cfg *config.Config) *logrus.Entry {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		}
		logrus.SetOutput(rotator)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	return logrus.WithField("session", uuid.NewString())
}

func Close() error {
	if rotator == nil {
		return nil
	}
	return rotator.Close()
}

func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext falls back to the standard logger when ctx carries no entry.
func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
