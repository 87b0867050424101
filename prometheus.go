package vector

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by vectors.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Options for the growths counter. It has the "op" label.
	Growths prometheus.CounterOpts
	// Options for the moved items counter.
	MovedItems prometheus.CounterOpts
	// Options for the allocated capacity histogram.
	AllocatedCapacity prometheus.HistogramOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
//
// Collectors are created and registered once, when the config is first passed to
// [Config.Prometheus].
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "vector"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Growths: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "growths",
			Help:      "Number of storage reallocations",
		},
		MovedItems: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moved_items",
			Help:      "Number of items moved into reallocated storage",
		},
		AllocatedCapacity: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocated_capacity",
			Help:      "Capacity of reallocated storage",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	c.once.Do(func() {
		m := metrics{
			growths:           prometheus.NewCounterVec(c.Growths, []string{"op"}),
			movedItems:        prometheus.NewCounter(c.MovedItems),
			allocatedCapacity: prometheus.NewHistogram(c.AllocatedCapacity),
		}

		if c.registerer != nil {
			c.registerer.MustRegister(
				m.growths,
				m.movedItems,
				m.allocatedCapacity,
			)
		}

		c.m = &m
	})
	return c.m
}

type metrics struct {
	growths           *prometheus.CounterVec
	movedItems        prometheus.Counter
	allocatedCapacity prometheus.Histogram
}
