// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/config"
	"github.com/katalvlaran/routesim/logging"
)

func TestNew_StdoutOnly(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := logging.New(config.Log{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	log.Info("hidden")
	log.WithField("episode", 3).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "episode=3")
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "routesim.log")

	log, closer, err := logging.New(config.Log{Level: "debug", File: path}, &buf)
	require.NoError(t, err)
	log.Debug("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := logging.New(config.Log{Level: "loud"}, nil)
	assert.Error(t, err)
}
