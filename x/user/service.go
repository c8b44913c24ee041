// Package user is the minimal user directory the post catalog consults
package user

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/timeline/core"
)

var tracer = otel.Tracer("user")

type service struct {
	repository Repository
	clock      core.Clock
}

// NewService creates a new user service
func NewService(repository Repository, clock core.Clock) core.UserService {
	return &service{repository, clock}
}

func (s *service) Create(ctx context.Context, username, nickname string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Create")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return core.User{}, core.NewErrorInvalidArgument("username", "must not be empty")
	}

	now := s.clock.Now()
	created, err := s.repository.Create(ctx, core.User{
		Username:           username,
		Nickname:           nickname,
		UsernameChangeTime: now,
		LastModified:       now,
	})
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, id uint) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetProfile(ctx context.Context, id uint) (core.UserProfile, error) {
	ctx, span := tracer.Start(ctx, "User.Service.GetProfile")
	defer span.End()

	user, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.UserProfile{}, err
	}

	return core.UserProfile{Username: user.Username, Nickname: user.Nickname}, nil
}

func (s *service) UserExists(ctx context.Context, id uint) (bool, error) {
	ctx, span := tracer.Start(ctx, "User.Service.UserExists")
	defer span.End()

	times, err := s.repository.GetIdentityChangeTimes(ctx, []uint{id})
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	_, ok := times[id]
	return ok, nil
}

// GetIdentityChangeTime returns when the username of id last changed
func (s *service) GetIdentityChangeTime(ctx context.Context, id uint) (time.Time, error) {
	ctx, span := tracer.Start(ctx, "User.Service.GetIdentityChangeTime")
	defer span.End()

	times, err := s.repository.GetIdentityChangeTimes(ctx, []uint{id})
	if err != nil {
		span.RecordError(err)
		return time.Time{}, err
	}

	changed, ok := times[id]
	if !ok {
		return time.Time{}, core.ErrorUserNotExist{UserID: id}
	}

	return changed, nil
}

func (s *service) GetIdentityChangeTimes(ctx context.Context, ids []uint) (map[uint]time.Time, error) {
	ctx, span := tracer.Start(ctx, "User.Service.GetIdentityChangeTimes")
	defer span.End()

	return s.repository.GetIdentityChangeTimes(ctx, ids)
}

// ChangeUsername renames the user. Renaming to the current name changes nothing.
func (s *service) ChangeUsername(ctx context.Context, id uint, username string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.ChangeUsername")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return core.User{}, core.NewErrorInvalidArgument("username", "must not be empty")
	}

	current, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}
	if current.Username == username {
		return current, nil
	}

	updated, err := s.repository.UpdateUsername(ctx, id, username, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return updated, nil
}

func (s *service) ChangeNickname(ctx context.Context, id uint, nickname string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.ChangeNickname")
	defer span.End()

	updated, err := s.repository.UpdateNickname(ctx, id, nickname, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return updated, nil
}

// Delete removes the user and announces it so posts can be detached
func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "User.Service.Delete")
	defer span.End()

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.repository.PublishDeleted(ctx, id)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, "failed to publish user deletion",
			slog.String("error", err.Error()),
			slog.Uint64("user", uint64(id)),
			slog.String("module", "user"),
		)
	}

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
