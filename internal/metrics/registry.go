// internal/metrics/registry.go
// Registry metrics per proses: counter request, collector runtime default,
// dan export Prometheus text format.
package metrics

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
)

const (
	RequestsTotalName = "safenet_requests_total"
	requestsTotalHelp = "Total HTTP requests"

	defaultSampleInterval = 10 * time.Second
)

type Options struct {
	// CollectDefaults: collector Go/process + sampler runtime dipasang saat
	// Start. Mati di test mode supaya tidak ada ticker yang tersisa.
	CollectDefaults bool
	SampleInterval  time.Duration
	Logger          *zap.Logger
}

// Registry dibuat satu per server (atau per test), bukan global.
type Registry struct {
	opts     Options
	reg      *prometheus.Registry
	gatherer prometheus.Gatherer
	requests prometheus.Counter
	format   expfmt.Format
	sampler  *runtimeSampler

	mu         sync.Mutex
	started    bool
	stopped    bool
	collecting bool
}

// NewRegistry membuat registry; counter request selalu didaftarkan di sini,
// metrics runtime default baru ditambah oleh Start.
func NewRegistry(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.SampleInterval <= 0 {
		opts.SampleInterval = defaultSampleInterval
	}

	reg := prometheus.NewRegistry()
	requests := prometheus.NewCounter(prometheus.CounterOpts{
		Name: RequestsTotalName,
		Help: requestsTotalHelp,
	})
	if err := reg.Register(requests); err != nil {
		return nil, fmt.Errorf("register %s: %w", RequestsTotalName, err)
	}

	return &Registry{
		opts:     opts,
		reg:      reg,
		gatherer: reg,
		requests: requests,
		format:   expfmt.NewFormat(expfmt.TypeTextPlain),
	}, nil
}

// Start: uninitialized -> collecting, paling banyak sekali. Tidak melakukan
// apa-apa kalau CollectDefaults mati atau registry sudah di-Stop.
func (r *Registry) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return nil
	}
	r.started = true

	if !r.opts.CollectDefaults {
		r.opts.Logger.Debug("default runtime metrics disabled")
		return nil
	}

	sampler := newRuntimeSampler(r.opts.SampleInterval)
	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	cs = append(cs, sampler.collectors()...)
	for _, c := range cs {
		if err := r.reg.Register(c); err != nil {
			return fmt.Errorf("register default collector: %w", err)
		}
	}

	sampler.start()
	r.sampler = sampler
	r.collecting = true
	r.opts.Logger.Debug("default runtime metrics started",
		zap.Duration("interval", r.opts.SampleInterval))
	return nil
}

// Stop menghentikan sampler dan menunggu goroutine-nya selesai. Aman dipanggil
// berulang; setelah Stop, Start tidak akan menyalakan sampler lagi.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	r.stopped = true
	if r.sampler == nil {
		return
	}
	r.sampler.stop()
	r.collecting = false
	r.opts.Logger.Debug("default runtime metrics stopped")
}

// Collecting true di antara Start (dengan CollectDefaults) dan Stop pertama.
func (r *Registry) Collecting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collecting
}

// IncRequests menambah safenet_requests_total sebesar 1.
func (r *Registry) IncRequests() {
	r.requests.Inc()
}

// ContentType media type dari hasil Export.
func (r *Registry) ContentType() string {
	return string(r.format)
}

// Export gather semua metric lalu encode ke text exposition format.
// Berhenti (error) kalau ctx selesai duluan.
func (r *Registry) Export(ctx context.Context) ([]byte, error) {
	type result struct {
		body []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		body, err := r.encode()
		ch <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("export metrics: %w", ctx.Err())
	case res := <-ch:
		return res.body, res.err
	}
}

func (r *Registry) encode() ([]byte, error) {
	mfs, err := r.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, r.format)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return nil, fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		if err := closer.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
	}
	return buf.Bytes(), nil
}
