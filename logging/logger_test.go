package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn")

	Info("hidden")
	Warn("primary source unavailable", "url", "http://localhost:3000/employees")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "primary source unavailable")
	assert.Contains(t, out, "url=")
}

func TestInitWriterBadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "loud")

	Debug("hidden")
	Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "staffdir.log")
	require.NoError(t, Init(path, "debug"))
	Debug("resolved", "count", 3)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "staffdir started")
	assert.Contains(t, string(data), "count=3")
}
