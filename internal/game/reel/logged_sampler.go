package reel

import "go.uber.org/zap"

// LoggedSampler wraps a Sampler and logs every spin's stops and rows at debug level.
type LoggedSampler struct {
	sampler *Sampler
	logger  *zap.Logger
}

// NewLoggedSampler creates a LoggedSampler around sampler.
//
// Precondition: sampler and logger must be non-nil.
func NewLoggedSampler(sampler *Sampler, logger *zap.Logger) *LoggedSampler {
	return &LoggedSampler{sampler: sampler, logger: logger}
}

// Sample draws a spin through the wrapped sampler and logs it.
func (l *LoggedSampler) Sample() Grid {
	stops, grid := l.sampler.SampleWithStops()
	if ce := l.logger.Check(zap.DebugLevel, "spin"); ce != nil {
		rows := make([]string, 0, len(grid))
		for r := range grid {
			rows = append(rows, Grid{grid.Row(r)}.String())
		}
		ce.Write(
			zap.Ints("stops", stops),
			zap.Strings("rows", rows),
		)
	}
	return grid
}
