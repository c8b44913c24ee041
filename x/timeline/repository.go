//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package timeline

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/timeline/core"
)

// Repository is timeline repository interface
type Repository interface {
	Create(ctx context.Context, timeline core.Timeline) (core.Timeline, error)
	Get(ctx context.Context, id string) (core.Timeline, error)
	Rename(ctx context.Context, id string, name string, modified time.Time) (core.Timeline, error)
	// Delete removes the timeline with its posts and returns the content tags they referenced
	Delete(ctx context.Context, id string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

const (
	timelineCountKey = "timeline_count"
	postCountKey     = "post_count"
)

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new timeline repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Timeline{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count timelines",
			slog.String("error", err.Error()),
			slog.String("module", "timeline"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: timelineCountKey, Value: []byte(strconv.FormatInt(count, 10))})
}

func (r *repository) Create(ctx context.Context, timeline core.Timeline) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&timeline).Error
	if err != nil {
		span.RecordError(err)
		return core.Timeline{}, errors.Wrap(err, "failed to create timeline")
	}

	r.mc.Increment(timelineCountKey, 1)

	return timeline, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Repository.Get")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", id))

	var timeline core.Timeline
	err := r.db.WithContext(ctx).First(&timeline, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Timeline{}, core.ErrorTimelineNotExist{TimelineID: id}
		}
		span.RecordError(err)
		return core.Timeline{}, err
	}

	return timeline, nil
}

func (r *repository) Rename(ctx context.Context, id string, name string, modified time.Time) (core.Timeline, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Repository.Rename")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", id))

	var timeline core.Timeline
	result := r.db.WithContext(ctx).
		Model(&timeline).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":          name,
			"last_modified": modified,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Timeline{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Timeline{}, core.ErrorTimelineNotExist{TimelineID: id}
	}

	return timeline, nil
}

func (r *repository) Delete(ctx context.Context, id string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Repository.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", id))

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		span.RecordError(tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	var timeline core.Timeline
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&timeline, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrorTimelineNotExist{TimelineID: id}
		}
		span.RecordError(err)
		return nil, err
	}

	posts := tx.Model(&core.Post{}).Select("id").Where("timeline_id = ?", id)

	var tags []string
	err = tx.Model(&core.PostDataPart{}).Where("post_id IN (?)", posts).Pluck("tag", &tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Where("post_id IN (?)", posts).Delete(&core.PostDataPart{}).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Where("timeline_id = ?", id).Delete(&core.Post{}).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Delete(&core.Timeline{}, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Commit().Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to commit timeline deletion")
	}

	r.mc.Decrement(timelineCountKey, 1)
	// recounted lazily by the post repository
	r.mc.Delete(postCountKey)

	return tags, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Timeline.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(timelineCountKey)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, memcache.ErrCacheMiss) {
			r.setCurrentCount()
			return 0, errors.Wrap(err, "trying to fix...")
		}

		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
