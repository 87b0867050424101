package vector

import (
	"log/slog"
)

// Config holds optional settings shared by vectors created with it. The zero value is valid and
// disables every observer.
type Config struct {
	metrics *metrics
	logger  *slog.Logger
}

// ConfigFunc modifies a [Config]. It is accepted by the constructors of [Vector].
type ConfigFunc = func(c *Config)

// Prometheus enables growth metrics described by the provided [PrometheusConfig].
//
// Vectors configured with the same [PrometheusConfig] share one set of collectors.
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	if prometheus == nil {
		panic("prometheus config can't be nil")
	}
	c.metrics = prometheus.metrics()
}

// Logger enables debug logging of growth events.
func (c *Config) Logger(logger *slog.Logger) {
	if logger == nil {
		panic("logger can't be nil")
	}
	c.logger = logger
}

func newConfig(configFuncs ...ConfigFunc) *Config {
	if len(configFuncs) == 0 {
		return nil
	}

	cfg := Config{}
	for _, cf := range configFuncs {
		if cf != nil {
			cf(&cfg)
		}
	}

	return &cfg
}
