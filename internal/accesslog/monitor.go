package accesslog

import (
	"context"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

// Sizer reports the current size of an access log.
type Sizer interface {
	Size() (int64, error)
}

// SizeMonitor periodically hands the access log size to a publisher,
// usually a gauge.
type SizeMonitor struct {
	sizer    Sizer
	interval time.Duration
	publish  func(int64)
}

func NewSizeMonitor(sizer Sizer, interval time.Duration, publish func(int64)) *SizeMonitor {
	return &SizeMonitor{
		sizer:    sizer,
		interval: interval,
		publish:  publish,
	}
}

// Run publishes the size once and then on every tick until ctx is done.
func (m *SizeMonitor) Run(ctx context.Context) {
	logger := zap.S().Named("access_log_monitor")

	ticker := jitterbug.New(m.interval, &jitterbug.Norm{Stdev: m.interval / 10, Mean: 0})
	defer ticker.Stop()

	m.update(logger)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("size monitor stopped")
			return
		case <-ticker.C:
			m.update(logger)
		}
	}
}

func (m *SizeMonitor) update(logger *zap.SugaredLogger) {
	size, err := m.sizer.Size()
	if err != nil {
		logger.Warnw("failed to get access log size", "error", err)
		return
	}
	m.publish(size)
}
