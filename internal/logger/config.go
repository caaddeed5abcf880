package logger

import (
	"strings"

	"github.com/aleister1102/mdurl/internal/config"
	"github.com/rs/zerolog"
)

// LogFormat selects how records are rendered
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseLogFormat maps a log_format value to a LogFormat. Unknown values mean console.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// ParseLogLevel maps a log_level value to a zerolog level. An empty string means info.
func ParseLogLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

// FileOutput describes the rotated log file
type FileOutput struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// LoggerConfig is the resolved logger setup. A nil File means no file output.
type LoggerConfig struct {
	Level   zerolog.Level
	Format  LogFormat
	Console bool
	File    *FileOutput
}

// DefaultLoggerConfig logs info and above to the console only
func DefaultLoggerConfig() LoggerConfig {
	level, _ := ParseLogLevel(config.DefaultLogLevel)
	return LoggerConfig{
		Level:   level,
		Format:  ParseLogFormat(config.DefaultLogFormat),
		Console: true,
	}
}
