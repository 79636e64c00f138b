package logging_test

import (
	"bytes"
	"testing"

	"github.com/DonovanMods/mo2-inspect/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", zap.String("profile", "Default"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "Default")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}
