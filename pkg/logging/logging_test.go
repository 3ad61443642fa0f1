package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithFile(tt.verbosity, "")

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "dashtabs", "dashtabs.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWithFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "nested", "custom.log")

		SetupLoggerWithFile(1, logPath)

		_, err := os.Stat(logPath)
		assert.NoError(t, err)
	})

	t.Run("console only", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", tempDir)

		SetupLoggerWithFile(0, NoFile)

		_, err := os.Stat(filepath.Join(tempDir, "dashtabs"))
		assert.True(t, os.IsNotExist(err), "no log directory should be created")
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()

	assert.Equal(t, filepath.Join("/custom/state", "dashtabs", "dashtabs.log"), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("registry")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"registry"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "load-modules")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
