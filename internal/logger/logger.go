package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/tahir0900/expense-backend/internal/config"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// Init configures the shared logrus logger from the log section of the
// config file. With an empty file path everything goes to stdout.
func Init(cfg config.LogConfig) {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	switch cfg.Level {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	Logger.Out = os.Stdout
	if cfg.File == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		Logger.WithError(err).Warn("create log directory failed, using stdout")
		return
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		Logger.WithError(err).Warn("open log file failed, using stdout")
		return
	}
	Logger.Out = io.MultiWriter(os.Stdout, file)
}
