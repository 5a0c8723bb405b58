// SPDX-License-Identifier: MIT

// Package logging builds the logrus logger used by the simulator: text
// output with full timestamps, optionally teed into a rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/routesim/config"
)

// Rotation settings for the log file.
const (
	MaxSizeMB  = 100
	MaxBackups = 7
	MaxAgeDays = 30
)

// TimestampFormat is used by the text formatter.
const TimestampFormat = "2006-01-02 15:04:05"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to out and, when cfg.File is set, to a
// lumberjack-rotated file as well. The returned closer releases the file.
func New(cfg config.Log, out io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if out == nil {
		out = os.Stdout
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	if cfg.File == "" {
		logger.SetOutput(out)
		return logger, nopCloser{}, nil
	}

	if err = os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(out, fileLogger))

	return logger, fileLogger, nil
}
