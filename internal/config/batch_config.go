package config

import (
	"time"

	"github.com/aleister1102/mdurl/internal/common/batchprocessor"
)

// BatchConfig defines how large inputs are split and formatted concurrently
type BatchConfig struct {
	BatchSize          int `json:"batch_size,omitempty" yaml:"batch_size,omitempty" validate:"omitempty,min=1"`
	MaxConcurrentBatch int `json:"max_concurrent_batch,omitempty" yaml:"max_concurrent_batch,omitempty" validate:"omitempty,min=1"`
	BatchTimeoutSecs   int `json:"batch_timeout_secs,omitempty" yaml:"batch_timeout_secs,omitempty" validate:"omitempty,min=1"`
	ThresholdSize      int `json:"threshold_size,omitempty" yaml:"threshold_size,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultBatchConfig creates default batch configuration
func NewDefaultBatchConfig() BatchConfig {
	return BatchConfig{
		BatchSize:          DefaultBatchSize,
		MaxConcurrentBatch: DefaultMaxConcurrentBatch,
		ThresholdSize:      DefaultBatchThresholdSize,
	}
}

// ToBatchProcessorConfig converts BatchConfig to batchprocessor.BatchProcessorConfig
func (bc BatchConfig) ToBatchProcessorConfig() batchprocessor.BatchProcessorConfig {
	return batchprocessor.BatchProcessorConfig{
		BatchSize:          bc.BatchSize,
		MaxConcurrentBatch: bc.MaxConcurrentBatch,
		BatchTimeout:       time.Duration(bc.BatchTimeoutSecs) * time.Second,
		ThresholdSize:      bc.ThresholdSize,
	}
}
