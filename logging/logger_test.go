package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFromBuffer(t *testing.T) {
	var buf bytes.Buffer
	logData, err := New().FromBuffer(&buf).WithLevel("warn").Make()
	require.NoError(t, err)

	logData.Logger.Info().Msg("dropped")
	logData.Logger.Warn().Str("form", "Contact").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "Contact", entry["form"])
	assert.Contains(t, entry, "time")
}

func TestMakeFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.log")
	logData, err := New().FromPath(path).Make()
	require.NoError(t, err)
	defer logData.Close()

	assert.NotNil(t, logData.LogFile)
}

func TestMakeInvalidLevel(t *testing.T) {
	_, err := New().WithLevel("loud").Make()
	assert.Error(t, err)
}
