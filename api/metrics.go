// Prometheus instrumentation for the scheduling API, exposed on /metrics in
// OpenMetrics text format.

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the server's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	simulationsTotal   prometheus.Counter
	processesScheduled prometheus.Counter
	makespanTicks      prometheus.Histogram
}

// NewCollector creates and registers the API metrics. Each Collector owns
// its registry so multiple servers (as in tests) never collide on
// registration.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		simulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rrsim_simulations_total",
			Help: "Total number of simulation runs served",
		}),
		processesScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rrsim_processes_scheduled_total",
			Help: "Total number of processes scheduled across all runs",
		}),
		makespanTicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rrsim_makespan_ticks",
			Help:    "Distribution of simulated makespan per run, in ticks",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}

	c.registry.MustRegister(c.simulationsTotal)
	c.registry.MustRegister(c.processesScheduled)
	c.registry.MustRegister(c.makespanTicks)

	return c
}

// RecordRun records one completed simulation run.
func (c *Collector) RecordRun(processes int, makespan uint64) {
	c.simulationsTotal.Inc()
	c.processesScheduled.Add(float64(processes))
	c.makespanTicks.Observe(float64(makespan))
}

// Handler adapts the promhttp exposition handler to a fiber route.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
