// Package timeline manages timelines and the per-timeline post sequence
package timeline

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/auth"
	"github.com/totegamma/timeline/x/etag"
)

var tracer = otel.Tracer("timeline")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Create(c echo.Context) error
	Rename(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.TimelineService
	config  core.Config
}

// NewHandler creates a new handler
func NewHandler(service core.TimelineService, config core.Config) Handler {
	return &handler{service, config}
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.As(err, &core.ErrorTimelineNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodeTimelineNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorInvalidArgument{}):
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Code: core.ErrorCodeInternal, Message: err.Error()})
	}
}

// Get returns a timeline by ID, honoring conditional request headers
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Timeline.Handler.Get")
	defer span.End()

	timeline, err := h.service.GetTimeline(ctx, c.Param("tl"))
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	body, err := json.Marshal(core.ResponseBase[core.Timeline]{Status: "ok", Content: timeline})
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	digest := core.DataDigest{
		ETag:         etag.ComputeETag(body),
		LastModified: timeline.LastModified,
	}

	return etag.Respond(c, digest, h.config.MaxAge(), func() (string, []byte, error) {
		return echo.MIMEApplicationJSONCharsetUTF8, body, nil
	})
}

type timelineRequest struct {
	Name string `json:"name"`
}

// Create creates a timeline owned by the requester
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Timeline.Handler.Create")
	defer span.End()

	requester, ok := auth.GetRequester(c)
	if !ok {
		return c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	var request timelineRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	}

	created, err := h.service.CreateTimeline(ctx, request.Name, requester)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) requireOwner(c echo.Context) (bool, error) {
	ctx := c.Request().Context()

	requester, ok := auth.GetRequester(c)
	if !ok {
		return false, c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	timeline, err := h.service.GetTimeline(ctx, c.Param("tl"))
	if err != nil {
		return false, errorResponse(c, err)
	}

	if timeline.Owner != requester {
		return false, c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "you are not the owner of this timeline"})
	}

	return true, nil
}

// Rename changes the display name of a timeline
func (h handler) Rename(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Timeline.Handler.Rename")
	defer span.End()

	if ok, err := h.requireOwner(c); !ok {
		return err
	}

	var request timelineRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	}

	renamed, err := h.service.RenameTimeline(ctx, c.Param("tl"), request.Name)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": renamed})
}

// Delete removes a timeline and every post in it
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Timeline.Handler.Delete")
	defer span.End()

	if ok, err := h.requireOwner(c); !ok {
		return err
	}

	err := h.service.DeleteTimeline(ctx, c.Param("tl"))
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
