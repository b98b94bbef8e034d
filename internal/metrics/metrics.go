// SPDX-License-Identifier: MIT
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SelectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focusmap_selections_total",
		Help: "Dropdown selections handled, by select",
	}, []string{"select"})
	FocusAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "focusmap_focus_applied_total",
		Help: "Times the focus overlay was applied to a municipality",
	})
	BaseLayerSwitchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focusmap_base_layer_switches_total",
		Help: "Base map switches, by mode",
	}, []string{"mode"})
	FullscreenTogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focusmap_fullscreen_toggles_total",
		Help: "Fullscreen toggles, by resolved method",
	}, []string{"method"})
	DatasetMunicipalities = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "focusmap_dataset_municipalities",
		Help: "Municipalities indexed from the loaded dataset",
	})
	DatasetCollisions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "focusmap_dataset_collisions",
		Help: "Municipality names shared by more than one feature",
	})
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "focusmap_sessions_active",
		Help: "Map sessions held in memory",
	})
	SessionsPrunedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "focusmap_sessions_pruned_total",
		Help: "Idle map sessions removed by the pruner",
	})
)

func init() {
	prometheus.MustRegister(SelectionsTotal)
	prometheus.MustRegister(FocusAppliedTotal)
	prometheus.MustRegister(BaseLayerSwitchesTotal)
	prometheus.MustRegister(FullscreenTogglesTotal)
	prometheus.MustRegister(DatasetMunicipalities)
	prometheus.MustRegister(DatasetCollisions)
	prometheus.MustRegister(SessionsActive)
	prometheus.MustRegister(SessionsPrunedTotal)
}

// Handler exposes the registered metrics for scraping
func Handler() http.Handler { return promhttp.Handler() }
