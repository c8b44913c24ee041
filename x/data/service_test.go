package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/data/mock"
)

func TestComputeTag(t *testing.T) {
	a := ComputeTag([]byte("a"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, ComputeTag([]byte("a")))
	assert.NotEqual(t, a, ComputeTag([]byte("b")))
	assert.NotEqual(t, ComputeTag(nil), ComputeTag([]byte{0}))
}

func TestServiceDedup(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewPebbleRepository(openMemPebble(t)))

	first, err := service.Store(ctx, []byte("same bytes"))
	assert.NoError(t, err)
	second, err := service.Store(ctx, []byte("same bytes"))
	assert.NoError(t, err)
	other, err := service.Store(ctx, []byte("other bytes"))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)

	count, err := service.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// one holder lets go, the other still reads it
	assert.NoError(t, service.Dereference(ctx, first))
	data, err := service.Retrieve(ctx, first)
	if assert.NoError(t, err) {
		assert.Equal(t, []byte("same bytes"), data)
	}

	assert.NoError(t, service.Dereference(ctx, first))
	_, err = service.Retrieve(ctx, first)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestServiceDereferenceUnknown(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_data.NewMockRepository(ctrl)
	mockRepo.EXPECT().Release(gomock.Any(), "missing").Return(int64(0), core.ErrorDataNotExist{Tag: "missing"})

	service := NewService(mockRepo)
	assert.NoError(t, service.Dereference(ctx, "missing"))
}

func TestServiceStoreUsesContentTag(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := []byte("payload")

	mockRepo := mock_data.NewMockRepository(ctrl)
	mockRepo.EXPECT().Retain(gomock.Any(), ComputeTag(payload), payload).Return(int64(1), nil)

	service := NewService(mockRepo)
	tag, err := service.Store(ctx, payload)
	assert.NoError(t, err)
	assert.Equal(t, ComputeTag(payload), tag)
}
