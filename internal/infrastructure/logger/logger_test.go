package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Out: &buf})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithFields(logrus.Fields{"user_id": 42}).Info("baseline saved")
	require.Contains(t, buf.String(), "baseline saved")
	require.Contains(t, buf.String(), "user_id:42")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "bot.log")

	log, err := New(Options{Out: &buf, File: path})
	require.NoError(t, err)
	log.Warn("written twice")
	require.FileExists(t, path)
}
