//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"
)

type AgentService interface {
	Boot()
}

// DataService is the content-addressed blob store
type DataService interface {
	Store(ctx context.Context, data []byte) (string, error)
	Retrieve(ctx context.Context, tag string) ([]byte, error)
	Dereference(ctx context.Context, tag string) error
	Sweep(ctx context.Context, referenced map[string]bool, before time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type TimelineService interface {
	CreateTimeline(ctx context.Context, name string, owner uint) (Timeline, error)
	GetTimeline(ctx context.Context, id string) (Timeline, error)
	RenameTimeline(ctx context.Context, id string, name string) (Timeline, error)
	DeleteTimeline(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PostService interface {
	CreatePost(ctx context.Context, timelineID string, authorID uint, request PostCreateRequest) (Post, error)
	DeletePost(ctx context.Context, timelineID string, localID int64) error
	PatchPostProperty(ctx context.Context, timelineID string, localID int64, request PostPatchRequest) (Post, error)
	GetPost(ctx context.Context, timelineID string, localID int64, includeDeleted bool) (Post, error)
	ListPosts(ctx context.Context, timelineID string, modifiedSince *time.Time, includeDeleted bool) ([]Post, error)

	GetPostDataDigest(ctx context.Context, timelineID string, localID int64, index int) (DataDigest, error)
	GetPostData(ctx context.Context, timelineID string, localID int64, index int) (ByteData, error)
	HasPostModifyPermission(ctx context.Context, timelineID string, localID int64, userID uint) (bool, error)
	DetachAuthor(ctx context.Context, userID uint) (int64, error)
	DetachMissingAuthors(ctx context.Context) (int64, error)
	ReferencedTags(ctx context.Context) (map[string]bool, error)
	Count(ctx context.Context) (int64, error)
}

// StalenessResolver decides which posts changed since a point in time
type StalenessResolver interface {
	EffectiveLastModified(ctx context.Context, post Post) (time.Time, error)
	Filter(ctx context.Context, posts []Post, since time.Time) ([]Post, error)
}

type UserService interface {
	Create(ctx context.Context, username, nickname string) (User, error)
	Get(ctx context.Context, id uint) (User, error)
	GetProfile(ctx context.Context, id uint) (UserProfile, error)
	UserExists(ctx context.Context, id uint) (bool, error)
	GetIdentityChangeTime(ctx context.Context, id uint) (time.Time, error)
	GetIdentityChangeTimes(ctx context.Context, ids []uint) (map[uint]time.Time, error)
	ChangeUsername(ctx context.Context, id uint, username string) (User, error)
	ChangeNickname(ctx context.Context, id uint, nickname string) (User, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
