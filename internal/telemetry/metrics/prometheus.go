package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns the registry served on the metrics server: runtime and
// process collectors plus a constant version gauge for the running build.
func SetupPrometheus(versionInfo string) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	if versionInfo == "" {
		versionInfo = "unknown"
	}
	versionGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "frontend",
		Name:        "version_info",
		Help:        "Version of the running portfolio frontend, always 1",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	versionGauge.Set(1)

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versionGauge,
	)

	return promRegistry
}
