package metrics

import "github.com/prometheus/client_golang/prometheus"

var DrawingsCreatedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartdraw_drawings_created_total",
		Help: "number of drawings created, by drawing type",
	}, []string{"type"})

var DrawingsDeletedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartdraw_drawings_deleted_total",
		Help: "number of drawings deleted, by drawing type",
	}, []string{"type"})

var DrawingsLiveMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "chartdraw_drawings_live",
		Help: "number of drawings currently owned by the overlay",
	})

var DeserializeSkippedMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "chartdraw_deserialize_skipped_total",
		Help: "number of persisted drawing records skipped on load",
	})

func init() {
	prometheus.MustRegister(
		DrawingsCreatedMetrics,
		DrawingsDeletedMetrics,
		DrawingsLiveMetrics,
		DeserializeSkippedMetrics,
	)
}
