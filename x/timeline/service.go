package timeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/timeline/core"
)

type service struct {
	repository Repository
	data       core.DataService
	clock      core.Clock
}

// NewService creates a new timeline service
func NewService(repository Repository, data core.DataService, clock core.Clock) core.TimelineService {
	return &service{
		repository,
		data,
		clock,
	}
}

// CreateTimeline creates an empty timeline whose first post will get local id 1
func (s *service) CreateTimeline(ctx context.Context, name string, owner uint) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Service.CreateTimeline")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return core.Timeline{}, core.NewErrorInvalidArgument("name", "must not be empty")
	}

	timeline := core.Timeline{
		ID:           xid.New().String(),
		Name:         name,
		Owner:        owner,
		NextLocalID:  1,
		LastModified: s.clock.Now(),
	}
	span.SetAttributes(attribute.String("timeline", timeline.ID))

	created, err := s.repository.Create(ctx, timeline)
	if err != nil {
		span.RecordError(err)
		return core.Timeline{}, err
	}

	return created, nil
}

func (s *service) GetTimeline(ctx context.Context, id string) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Service.GetTimeline")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) RenameTimeline(ctx context.Context, id string, name string) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Service.RenameTimeline")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return core.Timeline{}, core.NewErrorInvalidArgument("name", "must not be empty")
	}

	renamed, err := s.repository.Rename(ctx, id, name, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.Timeline{}, err
	}

	return renamed, nil
}

// DeleteTimeline removes the timeline, its posts and their parts, then releases the content
func (s *service) DeleteTimeline(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Timeline.Service.DeleteTimeline")
	defer span.End()

	tags, err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	for _, tag := range tags {
		err := s.data.Dereference(ctx, tag)
		if err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx, "failed to dereference data of deleted timeline",
				slog.String("error", err.Error()),
				slog.String("timeline", id),
				slog.String("tag", tag),
				slog.String("module", "timeline"),
			)
		}
	}

	return nil
}

// Count returns the count number of timelines
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
