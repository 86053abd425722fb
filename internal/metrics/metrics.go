// Package metrics records catalog and projection counters for batch runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ulysse71/milky-way/internal/catalog"
)

// Collector holds the milkyway metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	catalogRows     prometheus.Counter
	catalogSkipped  prometheus.Counter
	starsByClass    *prometheus.CounterVec
	projectedPoints prometheus.Counter
	projectDuration prometheus.Histogram
	frameSkew       prometheus.Gauge
}

// NewCollector creates a collector and registers its metrics.
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		catalogRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "milkyway_catalog_rows_total",
			Help: "Catalog rows loaded as stars",
		}),
		catalogSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "milkyway_catalog_skipped_total",
			Help: "Empty and comment catalog lines",
		}),
		starsByClass: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milkyway_catalog_stars_total",
				Help: "Catalog stars by spectral class",
			},
			[]string{"class"},
		),
		projectedPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "milkyway_projected_points_total",
			Help: "Stars kept by the distance cutoff",
		}),
		projectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "milkyway_projection_duration_seconds",
			Help:    "Time spent projecting the catalog",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		frameSkew: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "milkyway_frame_skew",
			Help: "Dot product of the frame U and W axes",
		}),
	}

	m.registry.MustRegister(
		m.catalogRows,
		m.catalogSkipped,
		m.starsByClass,
		m.projectedPoints,
		m.projectDuration,
		m.frameSkew,
	)
	return m
}

// Registry returns the registry holding the collector's metrics.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCatalog records a catalog load.
func (m *Collector) RecordCatalog(cat *catalog.Catalog) {
	m.catalogRows.Add(float64(cat.Stats.Rows))
	m.catalogSkipped.Add(float64(cat.Stats.Skipped))
	for _, s := range cat.Stars {
		m.starsByClass.WithLabelValues(s.Class.String()).Inc()
	}
}

// RecordProjection records one projection run.
func (m *Collector) RecordProjection(points int, d time.Duration) {
	m.projectedPoints.Add(float64(points))
	m.projectDuration.Observe(d.Seconds())
}

// SetFrameSkew records the frame's axis skew.
func (m *Collector) SetFrameSkew(skew float64) {
	m.frameSkew.Set(skew)
}

// WriteTextfile writes all metrics in the text exposition format, for
// node_exporter's textfile collector.
func (m *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
