package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/mdurl/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "verbose"

	_, err := New(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoggerBuilder_Default(t *testing.T) {
	logger, err := NewLoggerBuilder().Build()
	require.NoError(t, err)

	cfg := logger.GetConfig()
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
	assert.True(t, cfg.Console)
	assert.Nil(t, cfg.File)
}

func TestLoggerBuilder_FileLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, err := NewLoggerBuilder().
		WithLevel(zerolog.DebugLevel).
		WithFormat(FormatJSON).
		WithFile(logFile, 1, 1).
		WithConsole(false).
		Build()
	require.NoError(t, err)
	defer logger.Close()

	logger.GetZerolog().Debug().Str("hostname", "xn--abc").Msg("this is a test")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"debug"`)
	assert.Contains(t, string(content), `"hostname":"xn--abc"`)
	assert.Contains(t, string(content), `"message":"this is a test"`)
}

func TestLoggerBuilder_TextConsole(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLoggerBuilder().
		WithFormat(FormatText).
		WithConsoleWriter(&buf).
		Build()
	require.NoError(t, err)

	logger.GetZerolog().Warn().Str("component", "Formatter").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "component=Formatter")
}

func TestLoggerBuilder_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLoggerBuilder().
		WithFormat(FormatJSON).
		WithLevel(zerolog.WarnLevel).
		WithConsoleWriter(&buf).
		Build()
	require.NoError(t, err)

	logger.GetZerolog().Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestLoggerBuilder_Validation(t *testing.T) {
	_, err := NewLoggerBuilder().WithFile("", 1, 1).Build()
	assert.Error(t, err)

	_, err = NewLoggerBuilder().WithFile("x.log", 0, 1).Build()
	assert.Error(t, err)

	_, err = NewLoggerBuilder().WithConsole(false).Build()
	assert.EqualError(t, err, "no output writers configured")
}

func TestConfigConverter(t *testing.T) {
	converter := NewConfigConverter()

	cfg, err := converter.ConvertConfig(config.LogConfig{
		LogFile:   "mdurl.log",
		LogFormat: "JSON",
		LogLevel:  "DEBUG",
	})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
	require.NotNil(t, cfg.File)
	assert.Equal(t, "mdurl.log", cfg.File.Path)
	assert.Equal(t, config.DefaultMaxLogSizeMB, cfg.File.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, cfg.File.MaxBackups)
}

func TestConfigConverter_NoFile(t *testing.T) {
	cfg, err := NewConfigConverter().ConvertConfig(config.LogConfig{MaxLogSizeMB: 7})
	require.NoError(t, err)
	assert.Nil(t, cfg.File)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
}

func TestConfigConverter_InvalidLevel(t *testing.T) {
	cfg, err := NewConfigConverter().ConvertConfig(config.LogConfig{LogLevel: "loud"})
	assert.ErrorContains(t, err, "invalid log level")
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
}

func TestDefaultLoggerConfig_FollowsConfigDefaults(t *testing.T) {
	cfg := DefaultLoggerConfig()

	expected, err := ParseLogLevel(config.DefaultLogLevel)
	require.NoError(t, err)
	assert.Equal(t, expected, cfg.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Format.String())
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected LogFormat
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"console", FormatConsole},
		{"", FormatConsole},
		{"xml", FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogFormat(tt.in))
		})
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "console", LogFormat(42).String())
}
