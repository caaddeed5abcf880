package batchprocessor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// BatchProcessorConfig holds configuration for batch processing
type BatchProcessorConfig struct {
	BatchSize          int           // Max items per batch
	MaxConcurrentBatch int           // Max concurrent batches, 1 for sequential processing
	BatchTimeout       time.Duration // Timeout per batch, zero for none
	ThresholdSize      int           // Inputs larger than this are split into batches
}

// DefaultBatchProcessorConfig returns default configuration
func DefaultBatchProcessorConfig() BatchProcessorConfig {
	return BatchProcessorConfig{
		BatchSize:          500,
		MaxConcurrentBatch: 4,
		ThresholdSize:      1000,
	}
}

// BatchResult holds the result of a batch processing
type BatchResult struct {
	BatchIndex int
	Offset     int
	Success    bool
	Error      error
	Processed  int
	Duration   time.Duration
}

// BatchProcessor handles splitting large inputs into smaller batches
type BatchProcessor struct {
	config BatchProcessorConfig
	logger zerolog.Logger
}

// NewBatchProcessor creates a new batch processor. Non-positive sizes fall
// back to the defaults.
func NewBatchProcessor(config BatchProcessorConfig, logger zerolog.Logger) *BatchProcessor {
	defaults := DefaultBatchProcessorConfig()
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.MaxConcurrentBatch <= 0 {
		config.MaxConcurrentBatch = 1
	}
	if config.ThresholdSize < 0 {
		config.ThresholdSize = defaults.ThresholdSize
	}

	return &BatchProcessor{
		config: config,
		logger: logger.With().Str("component", "BatchProcessor").Logger(),
	}
}

// ProcessFunc processes one batch. offset is the index of batch[0] in the
// whole input, so callers can write results into a shared slice without
// locking.
type ProcessFunc func(ctx context.Context, batch []string, offset int) error

// ShouldUseBatching determines if batching should be used based on input size
func (bp *BatchProcessor) ShouldUseBatching(inputSize int) bool {
	return inputSize > bp.config.ThresholdSize
}

// SplitIntoBatches splits a slice of strings into contiguous batches
func (bp *BatchProcessor) SplitIntoBatches(input []string) [][]string {
	if len(input) <= bp.config.BatchSize {
		return [][]string{input}
	}

	var batches [][]string
	for i := 0; i < len(input); i += bp.config.BatchSize {
		end := min(i+bp.config.BatchSize, len(input))
		batches = append(batches, input[i:end])
	}

	return batches
}

// ProcessBatches processes all batches sequentially or concurrently based on
// config. The returned error joins every batch error.
func (bp *BatchProcessor) ProcessBatches(ctx context.Context, input []string, processFunc ProcessFunc) ([]BatchResult, error) {
	if !bp.ShouldUseBatching(len(input)) {
		result := bp.runBatch(ctx, input, 0, 0, processFunc)
		return []BatchResult{result}, result.Error
	}

	batches := bp.SplitIntoBatches(input)
	bp.logger.Debug().
		Int("total_items", len(input)).
		Int("batch_count", len(batches)).
		Int("batch_size", bp.config.BatchSize).
		Msg("Starting batch processing")

	var results []BatchResult
	var err error
	if bp.config.MaxConcurrentBatch == 1 {
		results, err = bp.processSequentially(ctx, batches, processFunc)
	} else {
		results, err = bp.processConcurrently(ctx, batches, processFunc)
	}
	if err != nil {
		return results, err
	}

	return results, joinBatchErrors(results)
}

// processSequentially processes batches one by one
func (bp *BatchProcessor) processSequentially(ctx context.Context, batches [][]string, processFunc ProcessFunc) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(batches))

	offset := 0
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			bp.logger.Info().
				Int("completed_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch processing interrupted by context cancellation")
			return results, err
		}

		results = append(results, bp.runBatch(ctx, batch, i, offset, processFunc))
		offset += len(batch)
	}

	return results, nil
}

// processConcurrently processes batches concurrently with limit
func (bp *BatchProcessor) processConcurrently(ctx context.Context, batches [][]string, processFunc ProcessFunc) ([]BatchResult, error) {
	semaphore := make(chan struct{}, bp.config.MaxConcurrentBatch)
	results := make([]BatchResult, len(batches))
	var wg sync.WaitGroup

	offset := 0
	for i, batch := range batches {
		select {
		case <-ctx.Done():
			bp.logger.Info().
				Int("started_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch processing interrupted by context cancellation")
			wg.Wait()
			return results[:i], ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(batchIndex, batchOffset int, batchData []string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			// each goroutine owns its slot
			results[batchIndex] = bp.runBatch(ctx, batchData, batchIndex, batchOffset, processFunc)
		}(i, offset, batch)

		offset += len(batch)
	}

	wg.Wait()
	return results, nil
}

// runBatch applies the per-batch timeout and records the outcome
func (bp *BatchProcessor) runBatch(ctx context.Context, batch []string, batchIndex, offset int, processFunc ProcessFunc) BatchResult {
	batchCtx := ctx
	if bp.config.BatchTimeout > 0 {
		var cancel context.CancelFunc
		batchCtx, cancel = context.WithTimeout(ctx, bp.config.BatchTimeout)
		defer cancel()
	}

	start := time.Now()
	err := processFunc(batchCtx, batch, offset)
	duration := time.Since(start)

	if err != nil {
		bp.logger.Error().
			Err(err).
			Int("batch_index", batchIndex).
			Msg("Batch processing failed")
	} else {
		bp.logger.Debug().
			Int("batch_index", batchIndex).
			Dur("duration", duration).
			Int("processed", len(batch)).
			Msg("Batch processing completed")
	}

	return BatchResult{
		BatchIndex: batchIndex,
		Offset:     offset,
		Success:    err == nil,
		Error:      err,
		Processed:  len(batch),
		Duration:   duration,
	}
}

// GetBatchingStats returns the batch count and the size of the last batch
func (bp *BatchProcessor) GetBatchingStats(inputSize int) (batches int, remainingItems int) {
	if !bp.ShouldUseBatching(inputSize) {
		return 1, 0
	}

	batches = (inputSize + bp.config.BatchSize - 1) / bp.config.BatchSize
	remainingItems = inputSize % bp.config.BatchSize
	if remainingItems == 0 && inputSize > 0 {
		remainingItems = bp.config.BatchSize
	}

	return batches, remainingItems
}

func joinBatchErrors(results []BatchResult) error {
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errors.Join(errs...)
}
