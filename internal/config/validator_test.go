package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(cfg *GlobalConfig)
		expectedErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *GlobalConfig) {},
		},
		{
			name: "every mode is accepted",
			modify: func(cfg *GlobalConfig) {
				cfg.FormatConfig.Mode = "LINKS"
			},
		},
		{
			name: "unknown mode",
			modify: func(cfg *GlobalConfig) {
				cfg.FormatConfig.Mode = "shout"
			},
			expectedErr: "FormatConfig.Mode': rule 'mode'",
		},
		{
			name: "missing mode",
			modify: func(cfg *GlobalConfig) {
				cfg.FormatConfig.Mode = ""
			},
			expectedErr: "rule 'required'",
		},
		{
			name: "negative max length",
			modify: func(cfg *GlobalConfig) {
				cfg.FormatConfig.MaxLength = -1
			},
			expectedErr: "FormatConfig.MaxLength': rule 'min' (expected: 0)",
		},
		{
			name: "unknown log level",
			modify: func(cfg *GlobalConfig) {
				cfg.LogConfig.LogLevel = "verbose"
			},
			expectedErr: "rule 'loglevel'",
		},
		{
			name: "unknown log format",
			modify: func(cfg *GlobalConfig) {
				cfg.LogConfig.LogFormat = "xml"
			},
			expectedErr: "rule 'logformat'",
		},
		{
			name: "unknown output format",
			modify: func(cfg *GlobalConfig) {
				cfg.OutputConfig.Format = "csv"
			},
			expectedErr: "OutputConfig.Format': rule 'outputformat', actual: 'csv'",
		},
		{
			name: "zero batch size",
			modify: func(cfg *GlobalConfig) {
				cfg.BatchConfig.BatchSize = -3
			},
			expectedErr: "BatchConfig.BatchSize': rule 'min' (expected: 1)",
		},
		{
			name: "empty output format falls back to text",
			modify: func(cfg *GlobalConfig) {
				cfg.OutputConfig.Format = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.modify(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
