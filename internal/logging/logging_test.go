package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		verbosity int
		want      zerolog.Level
	}{
		"default warn":  {verbosity: 0, want: zerolog.WarnLevel},
		"info":          {verbosity: 1, want: zerolog.InfoLevel},
		"debug":         {verbosity: 2, want: zerolog.DebugLevel},
		"trace":         {verbosity: 3, want: zerolog.TraceLevel},
		"high is trace": {verbosity: 7, want: zerolog.TraceLevel},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Level(tc.verbosity))
		})
	}
}

func TestSetupFiltersByVerbosity(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := Setup(&buf, 0)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := Component(Setup(&buf, 1), "dump")
	logger.Info().Msg("rendering")
	assert.Contains(t, buf.String(), "component=dump")
}
