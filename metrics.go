package vector

import (
	"context"
	"log/slog"
)

// Operations that can trigger growth. Used as the "op" label and log attribute.
const (
	opPush    = "push"
	opInsert  = "insert"
	opResize  = "resize"
	opReserve = "reserve"
)

// grew reports a reallocation from capacity from to capacity to, during which moved items were
// transferred. A nil config reports nothing.
func (c *Config) grew(op string, from, to, moved int) {
	if c == nil {
		return
	}

	if c.metrics != nil {
		c.metrics.growths.WithLabelValues(op).Inc()
		c.metrics.movedItems.Add(float64(moved))
		c.metrics.allocatedCapacity.Observe(float64(to))
	}

	if c.logger != nil && c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("vector grew",
			slog.String("op", op),
			slog.Int("from", from),
			slog.Int("to", to),
			slog.Int("moved", moved),
		)
	}
}
