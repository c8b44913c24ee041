package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/timeline/core"
)

func TestReceiveGatewayAuthPropagation(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		expect uint
		found  bool
	}{
		{name: "propagated", header: "42", expect: 42, found: true},
		{name: "absent", header: "", found: false},
		{name: "garbage", header: "alice", found: false},
		{name: "negative", header: "-1", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(core.RequesterIdHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var got uint
			var found bool
			handler := ReceiveGatewayAuthPropagation(func(c echo.Context) error {
				got, found = GetRequester(c)
				return c.NoContent(http.StatusOK)
			})

			assert.NoError(t, handler(c))
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestRequireRequester(t *testing.T) {
	e := echo.New()
	handler := RequireRequester(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.Set(core.RequesterIdCtxKey, uint(7))
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
