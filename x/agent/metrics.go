package agent

import (
	"context"
	"log/slog"
)

type counter func(ctx context.Context) (int64, error)

func (a *agent) refreshMetrics(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Agent.RefreshMetrics")
	defer span.End()

	counters := []struct {
		name  string
		count counter
	}{
		{"post", a.post.Count},
		{"timeline", a.timeline.Count},
		{"user", a.user.Count},
		{"blob", a.data.Count},
	}

	for _, c := range counters {
		count, err := c.count(ctx)
		if err != nil {
			// counters recover on the next round after a cache miss
			slog.WarnContext(
				ctx, "failed to count resources",
				slog.String("type", c.name),
				slog.String("error", err.Error()),
				slog.String("module", "agent"),
			)
			continue
		}
		a.resources.WithLabelValues(c.name).Set(float64(count))
	}
}
