package commands

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// Logger adapts a logrus logger to apigw.Logger.
type Logger struct {
	entry *logrus.Logger
}

// NewLogger returns a stderr logger at info level, or debug when verbose.
func NewLogger(verbose bool) *Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &Logger{entry: logger}
}

// Logrus exposes the underlying logger.
func (l *Logger) Logrus() *logrus.Logger {
	return l.entry
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

var _ apigw.Logger = (*Logger)(nil)
