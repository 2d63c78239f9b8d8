package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false, true)
	assert.Equal(t, zerolog.InfoLevel, quiet.GetLevel())
	quiet.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	loud := New(&buf, true, true)
	assert.Equal(t, zerolog.DebugLevel, loud.GetLevel())
	loud.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "run_id=")
}

func TestNewRunIDPerLogger(t *testing.T) {
	var a, b bytes.Buffer
	la := New(&a, false, true)
	la.Info().Msg("x")
	lb := New(&b, false, true)
	lb.Info().Msg("x")
	assert.NotEqual(t, a.String(), b.String())
}
