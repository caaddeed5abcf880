package logger

import (
	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/config"
	"github.com/rs/zerolog"
)

// ConfigConverter turns the log_config section into a LoggerConfig
type ConfigConverter struct{}

func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig resolves cfg, filling rotation limits from the config
// defaults. An unknown level falls back to info and is reported through the error.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
		err = errorwrapper.WrapError(err, "invalid log level")
	}

	lc := LoggerConfig{
		Level:   level,
		Format:  ParseLogFormat(cfg.LogFormat),
		Console: true,
	}

	if cfg.LogFile != "" {
		lc.File = &FileOutput{
			Path:       cfg.LogFile,
			MaxSizeMB:  orDefault(cfg.MaxLogSizeMB, config.DefaultMaxLogSizeMB),
			MaxBackups: orDefault(cfg.MaxLogBackups, config.DefaultMaxLogBackups),
		}
	}

	return lc, err
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
