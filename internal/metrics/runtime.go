// internal/metrics/runtime.go
// Sampler runtime: update gauge lag scheduler dan umur sampler tiap tick.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// lag = seberapa telat tick diterima dibanding jadwalnya
type runtimeSampler struct {
	interval time.Duration
	started  time.Time
	now      func() time.Time

	lag    prometheus.Gauge
	uptime prometheus.Gauge

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newRuntimeSampler(interval time.Duration) *runtimeSampler {
	return &runtimeSampler{
		interval: interval,
		now:      time.Now,
		lag: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "runtime_scheduler_lag_seconds",
			Help: "Delay between a scheduled sampler tick and its delivery.",
		}),
		uptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metrics_sampler_uptime_seconds",
			Help: "Seconds since the runtime metrics sampler started.",
		}),
	}
}

func (s *runtimeSampler) collectors() []prometheus.Collector {
	return []prometheus.Collector{s.lag, s.uptime}
}

func (s *runtimeSampler) start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.started = s.now()
	s.observe(s.started)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case tick := <-ticker.C:
				s.observe(tick)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *runtimeSampler) stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *runtimeSampler) observe(scheduled time.Time) {
	now := s.now()
	lag := now.Sub(scheduled)
	if lag < 0 {
		lag = 0
	}
	s.lag.Set(lag.Seconds())
	s.uptime.Set(now.Sub(s.started).Seconds())
}
