package agent

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/totegamma/timeline/core"
)

const listenMaxInterval = time.Minute

// listenUserDeleted detaches the posts of every user announced on the deletion channel.
// A lost subscription is retried with exponential backoff until ctx is done.
func (a *agent) listenUserDeleted(ctx context.Context) {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = a.listenRetryInterval
	retry.MaxInterval = listenMaxInterval
	retry.MaxElapsedTime = 0

	b := backoff.WithContext(retry, ctx)
	b.Reset()

	for {
		subscribed, err := a.subscribeUserDeleted(ctx)
		if ctx.Err() != nil {
			return
		}
		if subscribed {
			b.Reset()
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			return
		}

		slog.WarnContext(
			ctx, "user deletion subscription lost",
			slog.String("error", err.Error()),
			slog.Duration("retry", wait),
			slog.String("module", "agent"),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// subscribeUserDeleted serves one subscription until it breaks.
// It reports whether the subscription was established at all.
func (a *agent) subscribeUserDeleted(ctx context.Context) (bool, error) {
	pubsub := a.rdb.Subscribe(ctx, core.UserDeletedChannel)
	defer pubsub.Close()

	_, err := pubsub.Receive(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to subscribe user deletion")
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return true, errors.New("user deletion channel closed")
			}
			a.handleUserDeleted(ctx, msg.Payload)
		}
	}
}

func (a *agent) handleUserDeleted(ctx context.Context, payload string) {
	ctx, span := tracer.Start(ctx, "Agent.HandleUserDeleted")
	defer span.End()

	id, err := strconv.ParseUint(payload, 10, 64)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, "invalid user deletion payload",
			slog.String("payload", payload),
			slog.String("module", "agent"),
		)
		return
	}

	_, err = a.post.DetachAuthor(ctx, uint(id))
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, "failed to detach author",
			slog.String("error", err.Error()),
			slog.Uint64("user", id),
			slog.String("module", "agent"),
		)
	}
}
