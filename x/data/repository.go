//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package data

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

// Repository persists reference-counted blobs
type Repository interface {
	// Retain stores the blob if absent and takes one reference. Returns the new count.
	Retain(ctx context.Context, tag string, data []byte) (int64, error)
	Get(ctx context.Context, tag string) ([]byte, error)
	// Release drops one reference and removes the blob when none is left. Returns the remaining count.
	Release(ctx context.Context, tag string) (int64, error)
	// Sweep removes blobs missing from referenced that were last retained before before
	Sweep(ctx context.Context, referenced map[string]bool, before time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

const (
	blobCacheKeyPrefix = "data:"
	blobCacheMaxSize   = 512 * 1024
	blobCountKey       = "blob_count"
	sweepBatchSize     = 500
)

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a postgres backed blob repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Blob{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count blobs",
			slog.String("error", err.Error()),
			slog.String("module", "data"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: blobCountKey, Value: []byte(strconv.FormatInt(count, 10))})
}

func (r *repository) Retain(ctx context.Context, tag string, data []byte) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Repository.Retain")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	var ref int64
	err := r.db.WithContext(ctx).Raw(
		"INSERT INTO blobs (tag, bytes, ref) VALUES (?, ?, 1) "+
			"ON CONFLICT (tag) DO UPDATE SET ref = blobs.ref + 1, last_retained = clock_timestamp() "+
			"RETURNING ref",
		tag, data,
	).Scan(&ref).Error
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to retain blob")
	}

	if ref == 1 {
		r.mc.Increment(blobCountKey, 1)
	}

	return ref, nil
}

func (r *repository) Get(ctx context.Context, tag string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Data.Repository.Get")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	item, err := r.mc.Get(blobCacheKeyPrefix + tag)
	if err == nil {
		return item.Value, nil
	}
	if !errors.Is(err, memcache.ErrCacheMiss) {
		span.RecordError(err)
	}

	var blob core.Blob
	err = r.db.WithContext(ctx).Select("tag", "bytes").Where("tag = ?", tag).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrorDataNotExist{Tag: tag}
		}
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to load blob")
	}

	if len(blob.Bytes) <= blobCacheMaxSize {
		err = r.mc.Set(&memcache.Item{Key: blobCacheKeyPrefix + tag, Value: blob.Bytes})
		if err != nil {
			span.RecordError(err)
		}
	}

	return blob.Bytes, nil
}

func (r *repository) Release(ctx context.Context, tag string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Repository.Release")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		span.RecordError(tx.Error)
		return 0, tx.Error
	}
	defer tx.Rollback()

	var blob core.Blob
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("tag", "ref").
		Where("tag = ?", tag).
		First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, core.ErrorDataNotExist{Tag: tag}
		}
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to lock blob")
	}

	remaining := blob.Ref - 1
	if remaining <= 0 {
		remaining = 0
		err = tx.Delete(&core.Blob{}, "tag = ?", tag).Error
	} else {
		err = tx.Model(&core.Blob{}).Where("tag = ?", tag).Update("ref", gorm.Expr("ref - 1")).Error
	}
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to release blob")
	}

	err = tx.Commit().Error
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to commit blob release")
	}

	if remaining == 0 {
		r.mc.Delete(blobCacheKeyPrefix + tag)
		r.mc.Decrement(blobCountKey, 1)
	}

	return remaining, nil
}

func (r *repository) Sweep(ctx context.Context, referenced map[string]bool, before time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Repository.Sweep")
	defer span.End()

	var candidates []string
	err := r.db.WithContext(ctx).
		Model(&core.Blob{}).
		Where("last_retained < ? OR ref <= 0", before).
		Pluck("tag", &candidates).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	orphans := make([]string, 0)
	for _, tag := range candidates {
		if !referenced[tag] {
			orphans = append(orphans, tag)
		}
	}
	span.SetAttributes(attribute.Int("candidates", len(candidates)), attribute.Int("orphans", len(orphans)))

	var removed int64
	for start := 0; start < len(orphans); start += sweepBatchSize {
		end := start + sweepBatchSize
		if end > len(orphans) {
			end = len(orphans)
		}
		batch := orphans[start:end]

		// a blob retained again since the candidates were read is kept
		result := r.db.WithContext(ctx).
			Where("tag IN ? AND (last_retained < ? OR ref <= 0)", batch, before).
			Delete(&core.Blob{})
		if result.Error != nil {
			span.RecordError(result.Error)
			return removed, result.Error
		}
		removed += result.RowsAffected

		for _, tag := range batch {
			r.mc.Delete(blobCacheKeyPrefix + tag)
		}
	}

	if removed > 0 {
		r.setCurrentCount()
	}

	return removed, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Data.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(blobCountKey)
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
