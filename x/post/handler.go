// Package post is the catalog of timeline posts and their content parts
package post

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/auth"
	"github.com/totegamma/timeline/x/etag"
)

var tracer = otel.Tracer("post")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
	GetData(c echo.Context) error
	GetFirstData(c echo.Context) error
}

type handler struct {
	service core.PostService
	config  core.Config
}

// NewHandler creates a new handler
func NewHandler(service core.PostService, config core.Config) Handler {
	return &handler{service, config}
}

func errorResponse(c echo.Context, err error) error {
	var invalid core.ErrorInvalidArgument
	switch {
	case errors.As(err, &core.ErrorBadFormat{}):
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	case errors.As(err, &invalid):
		code := core.ErrorCodeInvalidModel
		if invalid.Field == "dataList" {
			code = core.ErrorCodePostCreateDataInvalid
		}
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: code, Message: err.Error()})
	case errors.As(err, &core.ErrorTimelineNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodeTimelineNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorPostNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodePostNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorPostDataNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodePostDataNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorUserNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodeUserNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorConcurrencyConflict{}):
		return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Code: core.ErrorCodePostConcurrencyConflict, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Code: core.ErrorCodeInternal, Message: err.Error()})
	}
}

func parseLocalID(c echo.Context) (int64, error) {
	value := c.Param("post")
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, core.NewErrorBadFormat("post id", value)
	}
	return id, nil
}

func parseIndex(c echo.Context) (int, error) {
	value := c.Param("index")
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return 0, core.NewErrorBadFormat("data index", value)
	}
	return index, nil
}

// List returns the posts of a timeline. modifiedSince is RFC3339.
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.List")
	defer span.End()

	var modifiedSince *time.Time
	if value := c.QueryParam("modifiedSince"); value != "" {
		since, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return errorResponse(c, core.NewErrorBadFormat("modifiedSince", value))
		}
		modifiedSince = &since
	}
	includeDeleted := c.QueryParam("includeDeleted") == "true"

	posts, err := h.service.ListPosts(ctx, c.Param("tl"), modifiedSince, includeDeleted)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": posts})
}

// Get returns a single post
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Get")
	defer span.End()

	localID, err := parseLocalID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	post, err := h.service.GetPost(ctx, c.Param("tl"), localID, c.QueryParam("includeDeleted") == "true")
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": post})
}

type createDataRequest struct {
	Kind core.PostDataKind `json:"kind"`
	Text *string           `json:"text"`
	Data []byte            `json:"data"`
}

type createRequest struct {
	Time     *time.Time          `json:"time"`
	Color    *string             `json:"color"`
	DataList []createDataRequest `json:"dataList"`
}

// Create posts into a timeline as the requester.
// Each part carries either text or base64 data.
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Create")
	defer span.End()

	requester, ok := auth.GetRequester(c)
	if !ok {
		return c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	}

	dataList := make([]core.PostCreateRequestData, len(request.DataList))
	for i, item := range request.DataList {
		data := item.Data
		if item.Text != nil {
			data = []byte(*item.Text)
		}
		dataList[i] = core.PostCreateRequestData{Kind: item.Kind, Data: data}
	}

	created, err := h.service.CreatePost(ctx, c.Param("tl"), requester, core.PostCreateRequest{
		Time:     request.Time,
		Color:    request.Color,
		DataList: dataList,
	})
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// authorize answers false after writing the rejection
func (h handler) authorize(c echo.Context, localID int64) (bool, error) {
	requester, ok := auth.GetRequester(c)
	if !ok {
		return false, c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	permitted, err := h.service.HasPostModifyPermission(c.Request().Context(), c.Param("tl"), localID, requester)
	if err != nil {
		return false, errorResponse(c, err)
	}
	if !permitted {
		return false, c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "you are not allowed to modify this post"})
	}

	return true, nil
}

type patchRequest struct {
	Time  *time.Time `json:"time"`
	Color *string    `json:"color"`
}

// Patch updates time and/or color of a post
func (h handler) Patch(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Patch")
	defer span.End()

	localID, err := parseLocalID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	if ok, err := h.authorize(c, localID); !ok {
		return err
	}

	var request patchRequest
	err = c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	}

	patched, err := h.service.PatchPostProperty(ctx, c.Param("tl"), localID, core.PostPatchRequest{
		Time:  request.Time,
		Color: request.Color,
	})
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": patched})
}

// Delete tombstones a post
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Delete")
	defer span.End()

	localID, err := parseLocalID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	if ok, err := h.authorize(c, localID); !ok {
		return err
	}

	err = h.service.DeletePost(ctx, c.Param("tl"), localID)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h handler) respondData(c echo.Context, localID int64, index int) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.RespondData")
	defer span.End()

	timelineID := c.Param("tl")

	digest, err := h.service.GetPostDataDigest(ctx, timelineID, localID, index)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	var loadErr error
	err = etag.Respond(c, digest, h.config.MaxAge(), func() (string, []byte, error) {
		data, err := h.service.GetPostData(ctx, timelineID, localID, index)
		if err != nil {
			loadErr = err
			return "", nil, err
		}
		return string(data.Kind), data.Data, nil
	})
	if loadErr != nil {
		span.RecordError(loadErr)
		return errorResponse(c, loadErr)
	}
	return err
}

// GetData returns the content of one part, honoring conditional request headers
func (h handler) GetData(c echo.Context) error {
	localID, err := parseLocalID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	index, err := parseIndex(c)
	if err != nil {
		return errorResponse(c, err)
	}

	return h.respondData(c, localID, index)
}

// GetFirstData is GetData for index 0
func (h handler) GetFirstData(c echo.Context) error {
	localID, err := parseLocalID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	return h.respondData(c, localID, 0)
}
