// Package metrics counts the work done drawing fractals.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

type Metrics struct {
	Registry *prometheus.Registry

	Frames        prometheus.Counter
	Regenerations prometheus.Counter
	Segments      prometheus.Histogram
	Junctions     prometheus.Histogram
	Divide        prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractal_frames_total",
			Help: "Total number of frames divided",
		}),
		Regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractal_regenerations_total",
			Help: "Total number of times the trees were replaced",
		}),
		Segments: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fractal_segments",
			Help:    "Division lines drawn per frame",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Junctions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fractal_junctions",
			Help:    "Junctions visited per frame",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Divide: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fractal_divide_duration_seconds",
			Help:    "Time spent computing division lines per frame",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	m.Registry.MustRegister(m.Frames, m.Regenerations, m.Segments, m.Junctions, m.Divide)

	return m
}

// ObserveFrame records one frame's division.
func (m *Metrics) ObserveFrame(segments, junctions int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.Segments.Observe(float64(segments))
	m.Junctions.Observe(float64(junctions))
	m.Divide.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRegenerate() {
	if m == nil {
		return
	}
	m.Regenerations.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// WriteTextfile dumps the registry to path for the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
