package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where the log goes and how much of it there is
type Options struct {
	Verbose bool
	// File, when set, receives the log instead of stderr and is rotated
	File string
}

// New builds the logger for one run. Nothing below warn is written unless
// Verbose is set.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output(opts))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    opts.File != "",
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05.000",
		QuoteEmptyFields: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func output(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}
