// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logger builds the process-wide structured logger.

Every entry is JSON (log/slog) and carries app=beacon. Stdout is always a sink;
when a log file is configured the same stream is teed into it, with rotation,
compression, and retention handled by lumberjack.
*/
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
)

// Options controls level and the optional rotated file sink.
type Options struct {
	Debug bool

	// File is the log file path. Empty disables the file sink.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a JSON logger and a closer for the file sink (a no-op without one).
func New(options Options) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if options.Debug {
		level = slog.LevelDebug
	}

	var (
		writer io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)

	if options.File != "" {
		if err := os.MkdirAll(filepath.Dir(options.File), 0o755); err != nil {
			return nil, nil, err
		}

		fileSink := &lumberjack.Logger{
			Filename:   options.File,
			MaxSize:    options.MaxSizeMB,
			MaxBackups: options.MaxBackups,
			MaxAge:     options.MaxAgeDays,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stdout, fileSink)
		closer = fileSink
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "beacon")), closer, nil
}

type nopCloser struct{}

// Close does nothing.
func (nopCloser) Close() error { return nil }
