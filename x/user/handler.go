package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/auth"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Register(c echo.Context) error
	UpdateMe(c echo.Context) error
	DeleteMe(c echo.Context) error
}

type handler struct {
	service core.UserService
}

// NewHandler creates a new handler
func NewHandler(service core.UserService) Handler {
	return &handler{service}
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.As(err, &core.ErrorUserNotExist{}):
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Code: core.ErrorCodeUserNotExist, Message: err.Error()})
	case errors.As(err, &core.ErrorInvalidArgument{}):
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Code: core.ErrorCodeInternal, Message: err.Error()})
	}
}

// Get returns the public profile of a user
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Get")
	defer span.End()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: "invalid user id"})
	}

	profile, err := h.service.GetProfile(ctx, uint(id))
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": profile})
}

type userRequest struct {
	Username *string `json:"username"`
	Nickname *string `json:"nickname"`
}

// Register creates a user. Account management proper lives in front of this service.
func (h handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Register")
	defer span.End()

	var request userRequest
	err := c.Bind(&request)
	if err != nil || request.Username == nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: "username is required"})
	}

	nickname := ""
	if request.Nickname != nil {
		nickname = *request.Nickname
	}

	created, err := h.service.Create(ctx, *request.Username, nickname)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// UpdateMe changes the username and/or nickname of the requester
func (h handler) UpdateMe(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.UpdateMe")
	defer span.End()

	requester, ok := auth.GetRequester(c)
	if !ok {
		return c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	var request userRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Code: core.ErrorCodeInvalidModel, Message: err.Error()})
	}

	var updated core.User
	if request.Username != nil {
		updated, err = h.service.ChangeUsername(ctx, requester, *request.Username)
		if err != nil {
			span.RecordError(err)
			return errorResponse(c, err)
		}
	}
	if request.Nickname != nil {
		updated, err = h.service.ChangeNickname(ctx, requester, *request.Nickname)
		if err != nil {
			span.RecordError(err)
			return errorResponse(c, err)
		}
	}
	if request.Username == nil && request.Nickname == nil {
		updated, err = h.service.Get(ctx, requester)
		if err != nil {
			span.RecordError(err)
			return errorResponse(c, err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// DeleteMe removes the requester from the directory
func (h handler) DeleteMe(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.DeleteMe")
	defer span.End()

	requester, ok := auth.GetRequester(c)
	if !ok {
		return c.JSON(http.StatusForbidden, core.ErrorResponse{Code: core.ErrorCodeForbid, Message: "requester not found"})
	}

	err := h.service.Delete(ctx, requester)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
