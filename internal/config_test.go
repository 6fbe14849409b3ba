package internal

import (
	"log/slog"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/vault")
	t.Setenv("LOG_LEVEL", "DEBUG")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.Equal("/tmp/vault", config.BadgerFilepath)
	req.Equal("DEBUG", config.LogLevel)
}

func TestLoggerFromString(t *testing.T) {
	req := require.New(t)

	req.True(LoggerFromString("DEBUG").Enabled(t.Context(), slog.LevelDebug))
	req.False(LoggerFromString("ERROR").Enabled(t.Context(), slog.LevelWarn))
	// Unknown levels fall back to INFO.
	log := LoggerFromString("bogus")
	req.True(log.Enabled(t.Context(), slog.LevelInfo))
	req.False(log.Enabled(t.Context(), slog.LevelDebug))
}
