// Package staleness decides which posts a client that synced at some point has to refetch.
//
// A post is stale when its own lastUpdated moved, or when its author changed
// username, since the username is part of how the post is addressed.
// Nickname changes are deliberately invisible here.
package staleness

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/timeline/core"
)

var tracer = otel.Tracer("staleness")

// EffectiveLastModified is max(post.LastUpdated, identityChange).
// A nil identityChange (no author, or unknown author) contributes nothing.
func EffectiveLastModified(post core.Post, identityChange *time.Time) time.Time {
	if identityChange != nil && identityChange.After(post.LastUpdated) {
		return *identityChange
	}
	return post.LastUpdated
}

type resolver struct {
	user core.UserService
}

// NewResolver creates a resolver backed by the user directory
func NewResolver(user core.UserService) core.StalenessResolver {
	return &resolver{user}
}

func authorsOf(posts []core.Post) []uint {
	seen := make(map[uint]struct{})
	authors := make([]uint, 0)
	for _, post := range posts {
		if post.AuthorID == nil {
			continue
		}
		if _, ok := seen[*post.AuthorID]; ok {
			continue
		}
		seen[*post.AuthorID] = struct{}{}
		authors = append(authors, *post.AuthorID)
	}
	return authors
}

func lookup(changes map[uint]time.Time, post core.Post) *time.Time {
	if post.AuthorID == nil {
		return nil
	}
	changed, ok := changes[*post.AuthorID]
	if !ok {
		return nil
	}
	return &changed
}

func (r *resolver) EffectiveLastModified(ctx context.Context, post core.Post) (time.Time, error) {
	ctx, span := tracer.Start(ctx, "Staleness.Resolver.EffectiveLastModified")
	defer span.End()

	if post.AuthorID == nil {
		return post.LastUpdated, nil
	}

	changes, err := r.user.GetIdentityChangeTimes(ctx, []uint{*post.AuthorID})
	if err != nil {
		span.RecordError(err)
		return time.Time{}, err
	}

	return EffectiveLastModified(post, lookup(changes, post)), nil
}

// Filter keeps the posts whose effective last-modified is at or after since, in input order
func (r *resolver) Filter(ctx context.Context, posts []core.Post, since time.Time) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Staleness.Resolver.Filter")
	defer span.End()
	span.SetAttributes(attribute.Int("candidates", len(posts)))

	changes := map[uint]time.Time{}
	if authors := authorsOf(posts); len(authors) > 0 {
		var err error
		changes, err = r.user.GetIdentityChangeTimes(ctx, authors)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	result := make([]core.Post, 0, len(posts))
	for _, post := range posts {
		if !EffectiveLastModified(post, lookup(changes, post)).Before(since) {
			result = append(result, post)
		}
	}

	span.SetAttributes(attribute.Int("kept", len(result)))
	return result, nil
}
