package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/adhocore/gronx"
)

// content retained within this period may belong to a post still being written
const sweepGracePeriod = time.Hour

// sweepIfDue runs the reconciliation passes once the cron schedule has passed its next tick
func (a *agent) sweepIfDue(ctx context.Context, now time.Time) bool {
	ctx, span := tracer.Start(ctx, "Agent.SweepIfDue")
	defer span.End()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.nextSweep.IsZero() {
		next, err := gronx.NextTickAfter(a.config.Server.SweepSchedule, now, false)
		if err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx, "invalid sweep schedule",
				slog.String("error", err.Error()),
				slog.String("module", "agent"),
			)
			return false
		}
		a.nextSweep = next
	}

	if now.Before(a.nextSweep) {
		return false
	}

	a.reconcileAuthors(ctx)
	a.sweepContent(ctx, now)

	next, err := gronx.NextTickAfter(a.config.Server.SweepSchedule, now, false)
	if err != nil {
		span.RecordError(err)
		a.nextSweep = time.Time{}
		return true
	}
	a.nextSweep = next

	return true
}

// reconcileAuthors detaches authors whose deletion notification never arrived
func (a *agent) reconcileAuthors(ctx context.Context) {
	detached, err := a.post.DetachMissingAuthors(ctx)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to detach missing authors",
			slog.String("error", err.Error()),
			slog.String("module", "agent"),
		)
		return
	}
	if detached > 0 {
		slog.InfoContext(
			ctx, "missing authors detached",
			slog.Int64("posts", detached),
			slog.String("module", "agent"),
		)
	}
}

// sweepContent drops content no post refers to any more
func (a *agent) sweepContent(ctx context.Context, now time.Time) {
	before := now.Add(-sweepGracePeriod)

	referenced, err := a.post.ReferencedTags(ctx)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to list referenced content",
			slog.String("error", err.Error()),
			slog.String("module", "agent"),
		)
		return
	}

	swept, err := a.data.Sweep(ctx, referenced, before)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to sweep content store",
			slog.String("error", err.Error()),
			slog.String("module", "agent"),
		)
		return
	}
	if swept > 0 {
		slog.InfoContext(
			ctx, "content store swept",
			slog.Int64("blobs", swept),
			slog.String("module", "agent"),
		)
	}
}
