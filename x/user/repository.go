//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package user

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/timeline/core"
)

// Repository is user repository interface
type Repository interface {
	Create(ctx context.Context, user core.User) (core.User, error)
	Get(ctx context.Context, id uint) (core.User, error)
	GetIdentityChangeTimes(ctx context.Context, ids []uint) (map[uint]time.Time, error)
	UpdateUsername(ctx context.Context, id uint, username string, modified time.Time) (core.User, error)
	UpdateNickname(ctx context.Context, id uint, nickname string, modified time.Time) (core.User, error)
	Delete(ctx context.Context, id uint) error
	PublishDeleted(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

const (
	userCountKey = "user_count"
	ictKeyPrefix = "user:ict:"
	ictCacheTTL  = 60 * 60 // 1 hour
	// cached in place of the change time of a deleted user
	ictGone = "gone"
)

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	mc  *memcache.Client
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) Repository {
	return &repository{db, rdb, mc}
}

func ictKey(id uint) string {
	return ictKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

// storeIdentityChangeTime overwrites the cached value after a committed write.
// When that fails the entry is dropped so the next read goes to the database.
func (r *repository) storeIdentityChangeTime(id uint, value string) {
	err := r.mc.Set(&memcache.Item{
		Key:        ictKey(id),
		Value:      []byte(value),
		Expiration: ictCacheTTL,
	})
	if err != nil {
		r.mc.Delete(ictKey(id))
	}
}

// fillIdentityChangeTimes caches what a reader loaded from the database.
// Add never replaces an entry, so a value stored by a concurrent writer wins.
func (r *repository) fillIdentityChangeTimes(users []core.User) {
	for _, user := range users {
		r.mc.Add(&memcache.Item{
			Key:        ictKey(user.ID),
			Value:      []byte(user.UsernameChangeTime.UTC().Format(time.RFC3339Nano)),
			Expiration: ictCacheTTL,
		})
	}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.User{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count users",
			slog.String("error", err.Error()),
			slog.String("module", "user"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: userCountKey, Value: []byte(strconv.FormatInt(count, 10))})
}

func (r *repository) Create(ctx context.Context, user core.User) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.User{}, core.NewErrorInvalidArgument("username", "already taken")
		}
		return core.User{}, err
	}

	r.mc.Increment(userCountKey, 1)
	r.storeIdentityChangeTime(user.ID, user.UsernameChangeTime.UTC().Format(time.RFC3339Nano))

	return user, nil
}

func (r *repository) Get(ctx context.Context, id uint) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Get")
	defer span.End()

	var user core.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.User{}, core.ErrorUserNotExist{UserID: id}
		}
		span.RecordError(err)
		return core.User{}, err
	}

	return user, nil
}

// GetIdentityChangeTimes returns the username change time of every known id.
// Unknown ids are absent from the result.
func (r *repository) GetIdentityChangeTimes(ctx context.Context, ids []uint) (map[uint]time.Time, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.GetIdentityChangeTimes")
	defer span.End()
	span.SetAttributes(attribute.Int("count", len(ids)))

	result := make(map[uint]time.Time, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ictKey(id)
	}

	cached, err := r.mc.GetMulti(keys)
	if err != nil {
		span.RecordError(err)
		cached = map[string]*memcache.Item{}
	}

	missing := make([]uint, 0)
	for _, id := range ids {
		item, ok := cached[ictKey(id)]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if string(item.Value) == ictGone {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, string(item.Value))
		if err != nil {
			span.RecordError(err)
			missing = append(missing, id)
			continue
		}
		result[id] = t
	}

	if len(missing) == 0 {
		return result, nil
	}

	var users []core.User
	err = r.db.WithContext(ctx).
		Select("id", "username_change_time").
		Where("id IN ?", missing).
		Find(&users).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for _, user := range users {
		result[user.ID] = user.UsernameChangeTime.UTC()
	}
	r.fillIdentityChangeTimes(users)

	return result, nil
}

func (r *repository) update(ctx context.Context, id uint, values map[string]interface{}) (core.User, error) {
	var user core.User
	result := r.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return core.User{}, core.NewErrorInvalidArgument("username", "already taken")
		}
		return core.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.User{}, core.ErrorUserNotExist{UserID: id}
	}
	return user, nil
}

// UpdateUsername changes the username and bumps both change times
func (r *repository) UpdateUsername(ctx context.Context, id uint, username string, modified time.Time) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.UpdateUsername")
	defer span.End()

	user, err := r.update(ctx, id, map[string]interface{}{
		"username":             username,
		"username_change_time": modified,
		"last_modified":        modified,
	})
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	r.storeIdentityChangeTime(id, modified.UTC().Format(time.RFC3339Nano))

	return user, nil
}

// UpdateNickname changes the nickname and bumps only LastModified
func (r *repository) UpdateNickname(ctx context.Context, id uint, nickname string, modified time.Time) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.UpdateNickname")
	defer span.End()

	user, err := r.update(ctx, id, map[string]interface{}{
		"nickname":      nickname,
		"last_modified": modified,
	})
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return user, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "User.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.User{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.ErrorUserNotExist{UserID: id}
	}

	r.storeIdentityChangeTime(id, ictGone)
	r.mc.Decrement(userCountKey, 1)

	return nil
}

// PublishDeleted notifies subscribers that a user is gone
func (r *repository) PublishDeleted(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "User.Repository.PublishDeleted")
	defer span.End()

	err := r.rdb.Publish(ctx, core.UserDeletedChannel, strconv.FormatUint(uint64(id), 10)).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(userCountKey)
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
