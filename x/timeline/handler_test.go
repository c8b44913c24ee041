package timeline

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/core/mock"
)

func TestHandlerGetConditional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockTimelineService(ctrl)
	mockService.EXPECT().GetTimeline(gomock.Any(), "tl").Return(core.Timeline{ID: "tl", Name: "home", Owner: 1, LastModified: epoch}, nil).Times(3)
	mockService.EXPECT().GetTimeline(gomock.Any(), "missing").Return(core.Timeline{}, core.ErrorTimelineNotExist{TimelineID: "missing"})

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	get := func(id string, ifNoneMatch string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if ifNoneMatch != "" {
			req.Header.Set("If-None-Match", ifNoneMatch)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl")
		c.SetParamValues(id)
		assert.NoError(t, h.Get(c))
		return rec
	}

	first := get("tl", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `"name":"home"`)
	tag := first.Header().Get("ETag")
	assert.NotEmpty(t, tag)

	second := get("tl", tag)
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())

	third := get("tl", "garbage")
	assert.Equal(t, http.StatusBadRequest, third.Code)

	missing := get("missing", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHandlerDeleteRequiresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockTimelineService(ctrl)
	mockService.EXPECT().GetTimeline(gomock.Any(), "tl").Return(core.Timeline{ID: "tl", Owner: 1}, nil).Times(2)
	mockService.EXPECT().DeleteTimeline(gomock.Any(), "tl").Return(nil)

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	del := func(requester uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl")
		c.SetParamValues("tl")
		c.Set(core.RequesterIdCtxKey, requester)
		assert.NoError(t, h.Delete(c))
		return rec
	}

	assert.Equal(t, http.StatusForbidden, del(2).Code)
	assert.Equal(t, http.StatusOK, del(1).Code)
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockTimelineService(ctrl)
	mockService.EXPECT().CreateTimeline(gomock.Any(), "home", uint(5)).Return(core.Timeline{ID: "tl", Name: "home", Owner: 5}, nil)

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"home"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(core.RequesterIdCtxKey, uint(5))

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
