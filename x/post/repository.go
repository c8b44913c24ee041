//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package post

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

// Repository is post repository interface
type Repository interface {
	// Create assigns the next local id of the timeline to post and inserts it with its parts
	Create(ctx context.Context, post core.Post) (core.Post, error)
	// Get returns the post even when it is a tombstone
	Get(ctx context.Context, timelineID string, localID int64) (core.Post, error)
	List(ctx context.Context, timelineID string, includeDeleted bool) ([]core.Post, error)
	// MarkDeleted tombstones the post and returns the tags its parts referenced
	MarkDeleted(ctx context.Context, timelineID string, localID int64, modified time.Time) ([]string, error)
	Patch(ctx context.Context, timelineID string, localID int64, postTime *time.Time, color *string, modified time.Time) (core.Post, error)
	GetDataPart(ctx context.Context, timelineID string, localID int64, index int) (core.PostDataPart, error)
	DetachAuthor(ctx context.Context, userID uint, modified time.Time) (int64, error)
	// DetachMissingAuthors clears the author of posts whose author is no longer in the user directory
	DetachMissingAuthors(ctx context.Context, modified time.Time) (int64, error)
	// ReferencedTags lists every content tag a live data part points at
	ReferencedTags(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

const (
	postCountKey = "post_count"
)

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new post repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func orderedParts(db *gorm.DB) *gorm.DB {
	return db.Order("data_index ASC")
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Post{}).Where("deleted = ?", false).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count posts",
			slog.String("error", err.Error()),
			slog.String("module", "post"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: postCountKey, Value: []byte(strconv.FormatInt(count, 10))})
}

func (r *repository) Create(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", post.TimelineID))

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		span.RecordError(tx.Error)
		return core.Post{}, tx.Error
	}
	defer tx.Rollback()

	// the row lock serializes local id allocation per timeline
	var timeline core.Timeline
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&timeline, "id = ?", post.TimelineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.ErrorTimelineNotExist{TimelineID: post.TimelineID}
		}
		span.RecordError(err)
		return core.Post{}, err
	}

	post.LocalID = timeline.NextLocalID
	span.SetAttributes(attribute.Int64("localId", post.LocalID))

	err = tx.Model(&core.Timeline{}).
		Where("id = ?", timeline.ID).
		Updates(map[string]interface{}{
			"next_local_id": gorm.Expr("next_local_id + 1"),
			"last_modified": post.LastUpdated,
		}).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	err = tx.Create(&post).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			conflict := core.ErrorConcurrencyConflict{TimelineID: post.TimelineID, LocalID: post.LocalID}
			slog.ErrorContext(
				ctx, "local id allocated twice",
				slog.String("error", err.Error()),
				slog.String("timeline", post.TimelineID),
				slog.Int64("localId", post.LocalID),
				slog.String("module", "post"),
			)
			return core.Post{}, conflict
		}
		return core.Post{}, errors.Wrap(err, "failed to insert post")
	}

	err = tx.Commit().Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, errors.Wrap(err, "failed to commit post")
	}

	r.mc.Increment(postCountKey, 1)

	return post, nil
}

func (r *repository) Get(ctx context.Context, timelineID string, localID int64) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Get")
	defer span.End()

	var post core.Post
	err := r.db.WithContext(ctx).
		Preload("DataList", orderedParts).
		Where("timeline_id = ? AND local_id = ?", timelineID, localID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID}
		}
		span.RecordError(err)
		return core.Post{}, err
	}

	return post, nil
}

// List returns the posts of a timeline in ascending local id order
func (r *repository) List(ctx context.Context, timelineID string, includeDeleted bool) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).
		Preload("DataList", orderedParts).
		Where("timeline_id = ?", timelineID)
	if !includeDeleted {
		query = query.Where("deleted = ?", false)
	}

	var posts []core.Post
	err := query.Order("local_id ASC").Find(&posts).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return posts, nil
}

func lockTimeline(tx *gorm.DB, timelineID string) error {
	var timeline core.Timeline
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&timeline, "id = ?", timelineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrorTimelineNotExist{TimelineID: timelineID}
		}
		return err
	}
	return nil
}

// lockPost locks an active post inside tx
func lockPost(tx *gorm.DB, timelineID string, localID int64) (core.Post, error) {
	var post core.Post
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("timeline_id = ? AND local_id = ?", timelineID, localID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID}
		}
		return core.Post{}, err
	}
	if post.Deleted {
		return core.Post{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID, Deleted: true}
	}
	return post, nil
}

func (r *repository) MarkDeleted(ctx context.Context, timelineID string, localID int64, modified time.Time) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.MarkDeleted")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", timelineID), attribute.Int64("localId", localID))

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		span.RecordError(tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	// timeline before post, the same order as Create and timeline deletion
	err := lockTimeline(tx, timelineID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	post, err := lockPost(tx, timelineID, localID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var tags []string
	err = tx.Model(&core.PostDataPart{}).Where("post_id = ?", post.ID).Order("data_index ASC").Pluck("tag", &tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Where("post_id = ?", post.ID).Delete(&core.PostDataPart{}).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Model(&core.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"deleted":      true,
		"last_updated": modified,
	}).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Model(&core.Timeline{}).Where("id = ?", timelineID).Update("last_modified", modified).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	err = tx.Commit().Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to commit post deletion")
	}

	r.mc.Decrement(postCountKey, 1)

	return tags, nil
}

func (r *repository) Patch(ctx context.Context, timelineID string, localID int64, postTime *time.Time, color *string, modified time.Time) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Patch")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", timelineID), attribute.Int64("localId", localID))

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		span.RecordError(tx.Error)
		return core.Post{}, tx.Error
	}
	defer tx.Rollback()

	post, err := lockPost(tx, timelineID, localID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	values := map[string]interface{}{
		"last_updated": modified,
	}
	if postTime != nil {
		values["time"] = *postTime
	}
	if color != nil {
		values["color"] = *color
	}

	err = tx.Model(&core.Post{}).Where("id = ?", post.ID).Updates(values).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	err = tx.Commit().Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, errors.Wrap(err, "failed to commit post patch")
	}

	return r.Get(ctx, timelineID, localID)
}

func (r *repository) GetDataPart(ctx context.Context, timelineID string, localID int64, index int) (core.PostDataPart, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetDataPart")
	defer span.End()

	var post core.Post
	err := r.db.WithContext(ctx).
		Select("id", "deleted").
		Where("timeline_id = ? AND local_id = ?", timelineID, localID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.PostDataPart{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID}
		}
		span.RecordError(err)
		return core.PostDataPart{}, err
	}
	if post.Deleted {
		return core.PostDataPart{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID, Deleted: true}
	}

	var part core.PostDataPart
	err = r.db.WithContext(ctx).
		Where("post_id = ? AND data_index = ?", post.ID, index).
		First(&part).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.PostDataPart{}, core.ErrorPostDataNotExist{TimelineID: timelineID, LocalID: localID, Index: index}
		}
		span.RecordError(err)
		return core.PostDataPart{}, err
	}

	return part, nil
}

// DetachAuthor makes every post of the user anonymous
func (r *repository) DetachAuthor(ctx context.Context, userID uint, modified time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.DetachAuthor")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.Post{}).
		Where("author_id = ?", userID).
		Updates(map[string]interface{}{
			"author_id":    nil,
			"last_updated": modified,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *repository) DetachMissingAuthors(ctx context.Context, modified time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.DetachMissingAuthors")
	defer span.End()

	users := r.db.Model(&core.User{}).Select("id")

	result := r.db.WithContext(ctx).
		Model(&core.Post{}).
		Where("author_id IS NOT NULL AND author_id NOT IN (?)", users).
		Updates(map[string]interface{}{
			"author_id":    nil,
			"last_updated": modified,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *repository) ReferencedTags(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.ReferencedTags")
	defer span.End()

	var tags []string
	err := r.db.WithContext(ctx).
		Model(&core.PostDataPart{}).
		Distinct("tag").
		Pluck("tag", &tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return tags, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(postCountKey)
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
