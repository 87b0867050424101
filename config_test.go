package vector_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/teenjuna/vector"
	"github.com/teenjuna/vector/internal/testing/require"
)

func TestOptions(t *testing.T) {
	c := &vector.Config{}

	require.PanicWithError(t, "prometheus config can't be nil", func() {
		c.Prometheus(nil)
	})

	require.PanicWithError(t, "logger can't be nil", func() {
		c.Logger(nil)
	})
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := vector.New[int](func(c *vector.Config) {
		c.Logger(logger)
	})

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	v.Insert(0, 0)
	v.Resize(9)
	v.Reserve(100)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, len(lines), 5)

	expected := []string{
		`msg="vector grew" op=push from=0 to=1 moved=0`,
		`msg="vector grew" op=push from=1 to=2 moved=1`,
		`msg="vector grew" op=push from=2 to=4 moved=2`,
		`msg="vector grew" op=resize from=4 to=9 moved=4`,
		`msg="vector grew" op=reserve from=9 to=100 moved=9`,
	}
	for i, line := range lines {
		require.True(t, strings.HasSuffix(line, expected[i]))
	}
}

func TestLoggerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))

	v := vector.New[int](func(c *vector.Config) {
		c.Logger(logger)
	})
	for i := range 100 {
		v.PushBack(i)
	}
	require.Equal(t, out.Len(), 0)
}

func TestConfigSharedByClone(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := vector.Filled(2, 1, func(c *vector.Config) {
		c.Logger(logger)
	})
	require.Equal(t, out.Len(), 0)

	c := v.Clone()
	c.PushBack(2)
	require.True(t, strings.Contains(out.String(), "op=push from=2 to=4 moved=2"))
}
