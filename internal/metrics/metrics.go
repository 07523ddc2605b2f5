// Package metrics records process-lifetime query statistics and exposes
// them as Prometheus collectors with an optional scrape handler.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// opStats accumulates per-operation timing. Counters live for the process
// lifetime; the engine never resets them.
type opStats struct {
	count int64
	total time.Duration
	max   time.Duration
}

// OpSnapshot is a point-in-time view of one operation's counters.
type OpSnapshot struct {
	Count     int64         `json:"count"`
	Total     time.Duration `json:"-"`
	TotalMS   float64       `json:"total_ms"`
	MaxMS     float64       `json:"max_ms"`
	AverageMS float64       `json:"average_ms"`
}

// Registry tracks timing for every engine operation and mirrors the
// counters into Prometheus collectors.
type Registry struct {
	mu  sync.Mutex
	ops map[string]*opStats

	reg prometheus.Registerer

	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// New creates a Registry and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Registry {
	r := &Registry{
		ops: make(map[string]*opStats),
		reg: reg,
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ngss_queries_total",
				Help: "Total engine queries by operation.",
			},
			[]string{"operation"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ngss_query_duration_seconds",
				Help:    "Engine query latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(r.queriesTotal, r.queryDuration)
	return r
}

// Observe records one completed operation.
func (r *Registry) Observe(op string, d time.Duration) {
	r.mu.Lock()
	s, ok := r.ops[op]
	if !ok {
		s = &opStats{}
		r.ops[op] = s
	}
	s.count++
	s.total += d
	if d > s.max {
		s.max = d
	}
	r.mu.Unlock()

	r.queriesTotal.WithLabelValues(op).Inc()
	r.queryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// Snapshot returns a copy of every operation's counters.
func (r *Registry) Snapshot() map[string]OpSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]OpSnapshot, len(r.ops))
	for op, s := range r.ops {
		snap := OpSnapshot{
			Count:   s.count,
			Total:   s.total,
			TotalMS: float64(s.total) / float64(time.Millisecond),
			MaxMS:   float64(s.max) / float64(time.Millisecond),
		}
		if s.count > 0 {
			snap.AverageMS = snap.TotalMS / float64(s.count)
		}
		out[op] = snap
	}
	return out
}

// CacheStatsFunc supplies current cache counters for gauge registration.
type CacheStatsFunc func() (hits, misses, evictions uint64, size int)

// RegisterCache exposes a named cache's counters as Prometheus gauges.
func (r *Registry) RegisterCache(name string, stats CacheStatsFunc) {
	labels := prometheus.Labels{"cache": name}
	r.reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ngss_cache_hits_total", Help: "Cache hits.", ConstLabels: labels,
		}, func() float64 { h, _, _, _ := stats(); return float64(h) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ngss_cache_misses_total", Help: "Cache misses.", ConstLabels: labels,
		}, func() float64 { _, m, _, _ := stats(); return float64(m) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ngss_cache_evictions_total", Help: "Cache evictions.", ConstLabels: labels,
		}, func() float64 { _, _, e, _ := stats(); return float64(e) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ngss_cache_entries", Help: "Live cache entries.", ConstLabels: labels,
		}, func() float64 { _, _, _, s := stats(); return float64(s) }),
	)
}

// Handler returns the Prometheus scrape handler for a gatherer. The server
// exposes it only when a metrics listen address is configured.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
