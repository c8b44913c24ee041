package user

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/internal/testutil"
	"github.com/totegamma/timeline/x/user/mock"
)

var epoch = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func TestChangeUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := testutil.NewClock(epoch)
	later := epoch.Add(time.Minute)

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), uint(1)).Return(core.User{ID: 1, Username: "alice"}, nil).Times(2)
	mockRepo.EXPECT().UpdateUsername(gomock.Any(), uint(1), "alicia", later).Return(core.User{ID: 1, Username: "alicia", UsernameChangeTime: later, LastModified: later}, nil)

	service := NewService(mockRepo, clock)

	// same name, no identity change
	same, err := service.ChangeUsername(context.Background(), 1, "alice")
	if assert.NoError(t, err) {
		assert.Equal(t, "alice", same.Username)
	}

	clock.Set(later)
	renamed, err := service.ChangeUsername(context.Background(), 1, "alicia")
	if assert.NoError(t, err) {
		assert.Equal(t, later, renamed.UsernameChangeTime)
	}

	_, err = service.ChangeUsername(context.Background(), 1, " ")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestChangeNickname(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().UpdateNickname(gomock.Any(), uint(1), "Al", epoch).Return(core.User{ID: 1, Nickname: "Al", LastModified: epoch}, nil)

	service := NewService(mockRepo, testutil.NewClock(epoch))

	updated, err := service.ChangeNickname(context.Background(), 1, "Al")
	if assert.NoError(t, err) {
		assert.Equal(t, "Al", updated.Nickname)
	}
}

func TestGetIdentityChangeTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetIdentityChangeTimes(gomock.Any(), []uint{1}).Return(map[uint]time.Time{1: epoch}, nil).Times(2)
	mockRepo.EXPECT().GetIdentityChangeTimes(gomock.Any(), []uint{2}).Return(map[uint]time.Time{}, nil).Times(2)

	service := NewService(mockRepo, testutil.NewClock(epoch))
	ctx := context.Background()

	changed, err := service.GetIdentityChangeTime(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, epoch, changed)

	_, err = service.GetIdentityChangeTime(ctx, 2)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	exists, err := service.UserExists(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.UserExists(ctx, 2)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDeletePublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	gomock.InOrder(
		mockRepo.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil),
		mockRepo.EXPECT().PublishDeleted(gomock.Any(), uint(4)).Return(errors.New("redis down")),
	)
	mockRepo.EXPECT().Delete(gomock.Any(), uint(5)).Return(core.ErrorUserNotExist{UserID: 5})

	service := NewService(mockRepo, testutil.NewClock(epoch))

	// a lost notification does not undo the deletion
	assert.NoError(t, service.Delete(context.Background(), 4))
	assert.ErrorIs(t, service.Delete(context.Background(), 5), core.ErrorNotFound{})
}
