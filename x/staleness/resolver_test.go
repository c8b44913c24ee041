package staleness

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/core/mock"
)

var (
	t0  = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	eps = time.Millisecond
)

func uintPtr(v uint) *uint {
	return &v
}

func TestEffectiveLastModified(t *testing.T) {
	post := core.Post{LastUpdated: t0}

	assert.Equal(t, t0, EffectiveLastModified(post, nil))

	earlier := t0.Add(-time.Hour)
	assert.Equal(t, t0, EffectiveLastModified(post, &earlier))

	later := t0.Add(time.Hour)
	assert.Equal(t, later, EffectiveLastModified(post, &later))
}

func TestFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t2 := t0.Add(2 * time.Hour)

	posts := []core.Post{
		{LocalID: 1, AuthorID: uintPtr(1), LastUpdated: t0},
		{LocalID: 2, AuthorID: nil, LastUpdated: t0},
		{LocalID: 3, AuthorID: uintPtr(2), LastUpdated: t0.Add(3 * time.Hour)},
		{LocalID: 4, AuthorID: uintPtr(1), LastUpdated: t0},
		{LocalID: 5, AuthorID: uintPtr(9), LastUpdated: t0},
	}

	mockUser := mock_core.NewMockUserService(ctrl)
	// author 1 renamed at t2, author 2 never, author 9 was deleted
	mockUser.EXPECT().GetIdentityChangeTimes(gomock.Any(), []uint{1, 2, 9}).Return(map[uint]time.Time{
		1: t2,
		2: t0.Add(-time.Hour),
	}, nil).AnyTimes()

	resolver := NewResolver(mockUser)
	ctx := context.Background()

	ids := func(posts []core.Post) []int64 {
		out := []int64{}
		for _, p := range posts {
			out = append(out, p.LocalID)
		}
		return out
	}

	got, err := resolver.Filter(ctx, posts, t0)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))

	got, err = resolver.Filter(ctx, posts, t2.Add(-eps))
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, ids(got))

	got, err = resolver.Filter(ctx, posts, t2)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, ids(got))

	got, err = resolver.Filter(ctx, posts, t2.Add(eps))
	assert.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilterWithoutAuthors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no directory round trip when nobody is attributed
	resolver := NewResolver(mock_core.NewMockUserService(ctrl))

	got, err := resolver.Filter(context.Background(), []core.Post{{LocalID: 1, LastUpdated: t0}}, t0)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = resolver.Filter(context.Background(), nil, t0)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterDirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUser := mock_core.NewMockUserService(ctrl)
	mockUser.EXPECT().GetIdentityChangeTimes(gomock.Any(), gomock.Any()).Return(nil, errors.New("directory down"))

	resolver := NewResolver(mockUser)

	_, err := resolver.Filter(context.Background(), []core.Post{{AuthorID: uintPtr(1), LastUpdated: t0}}, t0)
	assert.Error(t, err)
}

func TestResolverEffectiveLastModified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	later := t0.Add(time.Hour)

	mockUser := mock_core.NewMockUserService(ctrl)
	mockUser.EXPECT().GetIdentityChangeTimes(gomock.Any(), []uint{1}).Return(map[uint]time.Time{1: later}, nil)
	mockUser.EXPECT().GetIdentityChangeTimes(gomock.Any(), []uint{2}).Return(map[uint]time.Time{}, nil)

	resolver := NewResolver(mockUser)
	ctx := context.Background()

	got, err := resolver.EffectiveLastModified(ctx, core.Post{AuthorID: uintPtr(1), LastUpdated: t0})
	assert.NoError(t, err)
	assert.Equal(t, later, got)

	got, err = resolver.EffectiveLastModified(ctx, core.Post{AuthorID: uintPtr(2), LastUpdated: t0})
	assert.NoError(t, err)
	assert.Equal(t, t0, got)

	got, err = resolver.EffectiveLastModified(ctx, core.Post{LastUpdated: t0})
	assert.NoError(t, err)
	assert.Equal(t, t0, got)
}
