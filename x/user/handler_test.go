package user

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

func TestHandlerGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockUserService(ctrl)
	mockService.EXPECT().GetProfile(gomock.Any(), uint(1)).Return(core.UserProfile{Username: "alice", Nickname: "Alice"}, nil)
	mockService.EXPECT().GetProfile(gomock.Any(), uint(2)).Return(core.UserProfile{}, core.ErrorUserNotExist{UserID: 2})

	h := NewHandler(mockService)
	e := echo.New()

	get := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		assert.NoError(t, h.Get(c))
		return rec
	}

	found := get("1")
	assert.Equal(t, http.StatusOK, found.Code)
	assert.Contains(t, found.Body.String(), `"username":"alice"`)

	assert.Equal(t, http.StatusNotFound, get("2").Code)
	assert.Equal(t, http.StatusBadRequest, get("alice").Code)
}

func TestHandlerUpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockUserService(ctrl)
	mockService.EXPECT().ChangeNickname(gomock.Any(), uint(3), "Ally").Return(core.User{ID: 3, Username: "alice", Nickname: "Ally"}, nil)

	h := NewHandler(mockService)
	e := echo.New()

	update := func(requester uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"nickname":"Ally"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if requester != 0 {
			c.Set(core.RequesterIdCtxKey, requester)
		}
		assert.NoError(t, h.UpdateMe(c))
		return rec
	}

	assert.Equal(t, http.StatusForbidden, update(0).Code)

	updated := update(3)
	assert.Equal(t, http.StatusOK, updated.Code)
	assert.Contains(t, updated.Body.String(), `"nickname":"Ally"`)
}
