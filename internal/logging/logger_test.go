package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKeyRenamed(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, slog.LevelInfo)
	log.Error("compile failed", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("hidden too")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
