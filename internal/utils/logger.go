package utils

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogLevel = logrus.InfoLevel
	logFormatText   = "text"
)

func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), logFormatText) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.Level = defaultLogLevel
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(lvl); err == nil {
			logger.Level = level
		}
	}
	return logger
}

// WithFatalError attaches err and the current goroutine stack to a log entry
func WithFatalError(logger *logrus.Logger, err error) *logrus.Entry {
	return logger.WithError(err).WithField("stack", string(debug.Stack()))
}
