package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}

func TestNewWriter_EmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "info")

	l.Debug().Msg("descartado")
	l.Info().Str("codusuario", "1001").Msg("login")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "solo debe haber una línea JSON")
	assert.Equal(t, "login", entry["message"])
	assert.Equal(t, "1001", entry["codusuario"])
}

func TestNew_ConArchivoRotado(t *testing.T) {
	file := filepath.Join(t.TempDir(), "api.log")
	l := New(Config{Env: "production", Level: "info", File: file, MaxSizeMB: 1})

	l.Info().Msg("hola")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hola"`)
}
