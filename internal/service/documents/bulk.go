package documents

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNothingToGenerate is returned when bulk generation is requested over an
// empty collection.
var ErrNothingToGenerate = errors.New("no records to generate documents for")

// DefaultBulkDelay spaces consecutive renders so the consuming environment
// is never asked for more than one downloadable artifact at a time.
const DefaultBulkDelay = 500 * time.Millisecond

// RenderResult reports the outcome of one scheduled render.
type RenderResult struct {
	Index int
	Err   error
}

// BulkScheduler sequences document renders with a fixed inter-call delay.
// There is no cancellation: once scheduled, every spaced call fires.
type BulkScheduler struct {
	delay  time.Duration
	sleep  func(time.Duration)
	logger *zap.Logger
}

// NewBulkScheduler builds a scheduler with the given spacing. A
// non-positive delay falls back to the default.
func NewBulkScheduler(delay time.Duration, logger *zap.Logger) *BulkScheduler {
	if delay <= 0 {
		delay = DefaultBulkDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkScheduler{delay: delay, sleep: time.Sleep, logger: logger}
}

// Schedule fires render once per record index, in order, each call offset
// from the previous by the configured delay. It returns immediately; the
// buffered result channel carries one entry per render and is closed when
// the batch finishes. Callers are free to ignore it.
func (s *BulkScheduler) Schedule(count int, render func(index int) error) (<-chan RenderResult, error) {
	if count == 0 {
		return nil, ErrNothingToGenerate
	}

	results := make(chan RenderResult, count)
	go func() {
		defer close(results)
		for i := 0; i < count; i++ {
			if i > 0 {
				s.sleep(s.delay)
			}
			err := render(i)
			if err != nil {
				s.logger.Error("bulk render failed", zap.Int("index", i), zap.Error(err))
			}
			results <- RenderResult{Index: i, Err: err}
		}
		s.logger.Info("bulk generation finished", zap.Int("count", count))
	}()

	return results, nil
}
