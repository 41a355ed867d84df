package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Session("s-1", "E1").Info().Int("expired", 2).Msg("vencimientos")
	l.Debug().Msg("no debe salir")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "vencimientos", entry["message"])
	assert.Equal(t, "s-1", entry["session_id"])
	assert.Equal(t, "E1", entry["user_id"])
	assert.EqualValues(t, 2, entry["expired"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruido"))
}
