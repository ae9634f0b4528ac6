// Package telemetry exports dashboard figures as Prometheus gauges so a
// node-exporter textfile collector can scrape them.
package telemetry

import (
	"fmt"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tracker"

// NewRegistry returns a fresh registry holding gauges for view.
func NewRegistry(view app.DashboardView) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	kpis := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "kpi_value",
		Help:      "Dashboard KPI value. Rates are fractions, totals are counts.",
	}, []string{"kpi", "unit"})
	for _, k := range view.Metrics.KPIs {
		kpis.WithLabelValues(string(k.ID), k.Unit).Set(k.Value)
	}

	statuses := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "status_share_percent",
		Help:      "Whole-percent share of filtered projects per status.",
	}, []string{"status"})
	for _, s := range view.Metrics.StatusOverview {
		statuses.WithLabelValues(string(s.Status)).Set(float64(s.Value))
	}

	stages := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stage_projects",
		Help:      "Filtered projects per lifecycle stage.",
	}, []string{"stage"})
	for _, s := range view.Metrics.LifecycleStages {
		stages.WithLabelValues(string(s.Stage)).Set(float64(s.Value))
	}

	projects := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "projects",
		Help:      "Projects in the snapshot and after filtering.",
	}, []string{"set"})
	projects.WithLabelValues("snapshot").Set(float64(view.TotalProjects))
	projects.WithLabelValues("filtered").Set(float64(len(view.Projects)))

	loaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_loaded_timestamp_seconds",
		Help:      "Unix time the snapshot was loaded, 0 when nothing is loaded.",
	})
	if view.Loaded {
		loaded.Set(float64(view.LoadedAt.UnixNano()) / 1e9)
	}

	reg.MustRegister(kpis, statuses, stages, projects, loaded)
	return reg
}

// WriteTextfile writes the gauges for view to path in the text exposition
// format. The file is replaced atomically.
func WriteTextfile(path string, view app.DashboardView) error {
	if err := prometheus.WriteToTextfile(path, NewRegistry(view)); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
