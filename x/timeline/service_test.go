package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/core/mock"
	"github.com/totegamma/timeline/internal/testutil"
	"github.com/totegamma/timeline/x/timeline/mock"
)

var epoch = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func TestCreateTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := testutil.NewClock(epoch)

	mockRepo := mock_timeline.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, timeline core.Timeline) (core.Timeline, error) {
			return timeline, nil
		},
	)
	mockData := mock_core.NewMockDataService(ctrl)

	service := NewService(mockRepo, mockData, clock)

	created, err := service.CreateTimeline(context.Background(), "  diary ", 3)
	if assert.NoError(t, err) {
		assert.Len(t, created.ID, 20)
		assert.Equal(t, "diary", created.Name)
		assert.Equal(t, uint(3), created.Owner)
		assert.Equal(t, int64(1), created.NextLocalID)
		assert.Equal(t, epoch, created.LastModified)
	}

	_, err = service.CreateTimeline(context.Background(), "   ", 3)
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestDeleteTimelineReleasesContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_timeline.NewMockRepository(ctrl)
	mockRepo.EXPECT().Delete(gomock.Any(), "tl").Return([]string{"a", "b", "a"}, nil)

	mockData := mock_core.NewMockDataService(ctrl)
	mockData.EXPECT().Dereference(gomock.Any(), "a").Return(nil).Times(2)
	mockData.EXPECT().Dereference(gomock.Any(), "b").Return(errors.New("storage down"))

	service := NewService(mockRepo, mockData, testutil.NewClock(epoch))

	// a failed release is logged, the timeline is gone regardless
	assert.NoError(t, service.DeleteTimeline(context.Background(), "tl"))
}

func TestDeleteMissingTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_timeline.NewMockRepository(ctrl)
	mockRepo.EXPECT().Delete(gomock.Any(), "gone").Return(nil, core.ErrorTimelineNotExist{TimelineID: "gone"})

	service := NewService(mockRepo, mock_core.NewMockDataService(ctrl), testutil.NewClock(epoch))

	err := service.DeleteTimeline(context.Background(), "gone")
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestRenameTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := testutil.NewClock(epoch)

	mockRepo := mock_timeline.NewMockRepository(ctrl)
	mockRepo.EXPECT().Rename(gomock.Any(), "tl", "renamed", epoch).Return(core.Timeline{ID: "tl", Name: "renamed", LastModified: epoch}, nil)

	service := NewService(mockRepo, mock_core.NewMockDataService(ctrl), clock)

	renamed, err := service.RenameTimeline(context.Background(), "tl", "renamed")
	if assert.NoError(t, err) {
		assert.Equal(t, "renamed", renamed.Name)
	}

	_, err = service.RenameTimeline(context.Background(), "tl", "")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}
