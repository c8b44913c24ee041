// Package data is the content-addressed store for post payloads
package data

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/sha3"

	"github.com/totegamma/timeline/core"
)

var tracer = otel.Tracer("data")

type service struct {
	repository Repository
}

// NewService creates a new data service
func NewService(repository Repository) core.DataService {
	return &service{repository}
}

// ComputeTag returns the lowercase hex SHA3-256 of data
func ComputeTag(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Store saves data and returns its tag. Storing the same bytes again only adds a reference.
func (s *service) Store(ctx context.Context, data []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "Data.Service.Store")
	defer span.End()

	tag := ComputeTag(data)
	span.SetAttributes(attribute.String("tag", tag))

	_, err := s.repository.Retain(ctx, tag, data)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return tag, nil
}

func (s *service) Retrieve(ctx context.Context, tag string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Data.Service.Retrieve")
	defer span.End()

	data, err := s.repository.Get(ctx, tag)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return data, nil
}

// Dereference drops one reference. Unknown tags are logged and ignored.
func (s *service) Dereference(ctx context.Context, tag string) error {
	ctx, span := tracer.Start(ctx, "Data.Service.Dereference")
	defer span.End()

	_, err := s.repository.Release(ctx, tag)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			slog.WarnContext(
				ctx, "dereferenced unknown data",
				slog.String("tag", tag),
				slog.String("module", "data"),
			)
			return nil
		}
		span.RecordError(err)
		return err
	}

	return nil
}

// Sweep drops content that no post refers to. Content retained at or after
// before is kept so that posts still being written do not lose their parts.
func (s *service) Sweep(ctx context.Context, referenced map[string]bool, before time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Service.Sweep")
	defer span.End()

	removed, err := s.repository.Sweep(ctx, referenced, before)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	if removed > 0 {
		slog.InfoContext(
			ctx, "swept orphan data",
			slog.Int64("removed", removed),
			slog.String("module", "data"),
		)
	}

	return removed, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
