// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/platform/logger"
)

/*
TestNew_FileSink verifies JSON entries land in the rotated file.
*/
func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "beacon.log")

	log, closer, err := logger.New(logger.Options{File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	require.NoError(t, err)

	log.Info("article_created")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"article_created"`)
	assert.Contains(t, string(content), `"app":"beacon"`)
}

/*
TestNew_DebugLevel checks the debug switch.
*/
func TestNew_DebugLevel(t *testing.T) {
	log, closer, err := logger.New(logger.Options{Debug: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.True(t, log.Enabled(t.Context(), -4))
}
