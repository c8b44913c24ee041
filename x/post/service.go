package post

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/etag"
)

type service struct {
	repository Repository
	data       core.DataService
	timeline   core.TimelineService
	user       core.UserService
	staleness  core.StalenessResolver
	clock      core.Clock
	config     core.Config
}

// NewService creates a new post service
func NewService(
	repository Repository,
	data core.DataService,
	timeline core.TimelineService,
	user core.UserService,
	staleness core.StalenessResolver,
	clock core.Clock,
	config core.Config,
) core.PostService {
	return &service{
		repository,
		data,
		timeline,
		user,
		staleness,
		clock,
		config,
	}
}

// validateParts checks every part against its kind and returns the normalized kinds
func (s *service) validateParts(parts []core.PostCreateRequestData) ([]core.PostDataKind, error) {
	if len(parts) == 0 {
		return nil, core.NewErrorInvalidArgument("dataList", "at least one data part is required")
	}
	if len(parts) > s.config.MaxParts() {
		return nil, core.NewErrorInvalidArgument("dataList", "too many data parts")
	}

	kinds := make([]core.PostDataKind, len(parts))
	for i, part := range parts {
		validator, ok := core.LookupKind(part.Kind)
		if !ok {
			return nil, core.ErrorInvalidArgument{Field: "dataList", Index: i, Message: "unsupported kind " + string(part.Kind)}
		}
		if err := validator.Validate(part.Data); err != nil {
			return nil, core.ErrorInvalidArgument{Field: "dataList", Index: i, Message: err.Error()}
		}
		kinds[i] = validator.DefaultKind()
	}

	return kinds, nil
}

// release gives back content references regardless of the caller's cancellation
func (s *service) release(ctx context.Context, tags []string) {
	ctx = context.WithoutCancel(ctx)
	for _, tag := range tags {
		err := s.data.Dereference(ctx, tag)
		if err != nil {
			slog.ErrorContext(
				ctx, "failed to dereference data",
				slog.String("error", err.Error()),
				slog.String("tag", tag),
				slog.String("module", "post"),
			)
		}
	}
}

// CreatePost stores the content of every part, then allocates the local id and
// inserts the post in one transaction. Content stored for a post that never
// commits is released again.
func (s *service) CreatePost(ctx context.Context, timelineID string, authorID uint, request core.PostCreateRequest) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.CreatePost")
	defer span.End()
	span.SetAttributes(attribute.String("timeline", timelineID))

	kinds, err := s.validateParts(request.DataList)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	color := ""
	if request.Color != nil {
		if !core.IsValidColor(*request.Color) {
			return core.Post{}, core.NewErrorInvalidArgument("color", "must be #RRGGBB")
		}
		color = *request.Color
	}

	exists, err := s.user.UserExists(ctx, authorID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}
	if !exists {
		return core.Post{}, core.ErrorUserNotExist{UserID: authorID}
	}

	_, err = s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	now := s.clock.Now()
	postTime := now
	if request.Time != nil {
		postTime = request.Time.UTC()
	}

	parts := make([]core.PostDataPart, 0, len(request.DataList))
	stored := make([]string, 0, len(request.DataList))
	for i, item := range request.DataList {
		tag, err := s.data.Store(ctx, item.Data)
		if err != nil {
			span.RecordError(err)
			s.release(ctx, stored)
			return core.Post{}, err
		}
		stored = append(stored, tag)
		parts = append(parts, core.PostDataPart{
			Index:       i,
			Kind:        kinds[i],
			Tag:         tag,
			ETag:        etag.ComputeETag(item.Data),
			LastUpdated: now,
		})
	}

	author := authorID
	created, err := s.repository.Create(ctx, core.Post{
		TimelineID:  timelineID,
		AuthorID:    &author,
		Time:        postTime,
		Color:       color,
		LastUpdated: now,
		DataList:    parts,
	})
	if err != nil {
		span.RecordError(err)
		s.release(ctx, stored)
		return core.Post{}, err
	}

	return created, nil
}

// DeletePost tombstones an active post. Deleting a tombstone fails.
func (s *service) DeletePost(ctx context.Context, timelineID string, localID int64) error {
	ctx, span := tracer.Start(ctx, "Post.Service.DeletePost")
	defer span.End()

	tags, err := s.repository.MarkDeleted(ctx, timelineID, localID, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.release(ctx, tags)

	return nil
}

func (s *service) PatchPostProperty(ctx context.Context, timelineID string, localID int64, request core.PostPatchRequest) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.PatchPostProperty")
	defer span.End()

	if request.Color != nil && !core.IsValidColor(*request.Color) {
		return core.Post{}, core.NewErrorInvalidArgument("color", "must be #RRGGBB")
	}

	var postTime *time.Time
	if request.Time != nil {
		t := request.Time.UTC()
		postTime = &t
	}

	patched, err := s.repository.Patch(ctx, timelineID, localID, postTime, request.Color, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	return patched, nil
}

func (s *service) GetPost(ctx context.Context, timelineID string, localID int64, includeDeleted bool) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.GetPost")
	defer span.End()

	_, err := s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	post, err := s.repository.Get(ctx, timelineID, localID)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	if post.Deleted && !includeDeleted {
		return core.Post{}, core.ErrorPostNotExist{TimelineID: timelineID, LocalID: localID, Deleted: true}
	}

	return post, nil
}

// ListPosts returns the posts of a timeline in ascending local id order.
// With modifiedSince only posts whose effective last-modified is not before it are kept.
func (s *service) ListPosts(ctx context.Context, timelineID string, modifiedSince *time.Time, includeDeleted bool) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.ListPosts")
	defer span.End()

	_, err := s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	posts, err := s.repository.List(ctx, timelineID, includeDeleted)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if modifiedSince == nil {
		return posts, nil
	}

	filtered, err := s.staleness.Filter(ctx, posts, *modifiedSince)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return filtered, nil
}

func (s *service) GetPostDataDigest(ctx context.Context, timelineID string, localID int64, index int) (core.DataDigest, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.GetPostDataDigest")
	defer span.End()

	_, err := s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return core.DataDigest{}, err
	}

	part, err := s.repository.GetDataPart(ctx, timelineID, localID, index)
	if err != nil {
		span.RecordError(err)
		return core.DataDigest{}, err
	}

	return core.DataDigest{ETag: part.ETag, LastModified: part.LastUpdated}, nil
}

func (s *service) GetPostData(ctx context.Context, timelineID string, localID int64, index int) (core.ByteData, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.GetPostData")
	defer span.End()

	_, err := s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return core.ByteData{}, err
	}

	part, err := s.repository.GetDataPart(ctx, timelineID, localID, index)
	if err != nil {
		span.RecordError(err)
		return core.ByteData{}, err
	}

	data, err := s.data.Retrieve(ctx, part.Tag)
	if err != nil {
		span.RecordError(err)
		return core.ByteData{}, err
	}

	return core.ByteData{Data: data, Kind: part.Kind}, nil
}

// HasPostModifyPermission allows the timeline owner and the post author
func (s *service) HasPostModifyPermission(ctx context.Context, timelineID string, localID int64, userID uint) (bool, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.HasPostModifyPermission")
	defer span.End()

	timeline, err := s.timeline.GetTimeline(ctx, timelineID)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	if timeline.Owner == userID {
		return true, nil
	}

	post, err := s.repository.Get(ctx, timelineID, localID)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return post.AuthorID != nil && *post.AuthorID == userID, nil
}

// DetachAuthor turns the posts of a removed user anonymous
func (s *service) DetachAuthor(ctx context.Context, userID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.DetachAuthor")
	defer span.End()

	detached, err := s.repository.DetachAuthor(ctx, userID, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	slog.InfoContext(
		ctx, "detached author from posts",
		slog.Uint64("user", uint64(userID)),
		slog.Int64("posts", detached),
		slog.String("module", "post"),
	)

	return detached, nil
}

// DetachMissingAuthors catches up on user deletions whose notification was lost
func (s *service) DetachMissingAuthors(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.DetachMissingAuthors")
	defer span.End()

	detached, err := s.repository.DetachMissingAuthors(ctx, s.clock.Now())
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	if detached > 0 {
		slog.InfoContext(
			ctx, "detached missing authors from posts",
			slog.Int64("posts", detached),
			slog.String("module", "post"),
		)
	}

	return detached, nil
}

func (s *service) ReferencedTags(ctx context.Context) (map[string]bool, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.ReferencedTags")
	defer span.End()

	tags, err := s.repository.ReferencedTags(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	referenced := make(map[string]bool, len(tags))
	for _, tag := range tags {
		referenced[tag] = true
	}

	return referenced, nil
}

// Count returns the count number of active posts
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
