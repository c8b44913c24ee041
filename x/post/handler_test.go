package post

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
	"github.com/totegamma/timeline/x/etag"
)

func TestHandlerGetDataConditional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte("hello")
	digest := core.DataDigest{ETag: etag.ComputeETag(body), LastModified: epoch}

	mockService := mock_core.NewMockPostService(ctrl)
	mockService.EXPECT().GetPostDataDigest(gomock.Any(), "tl", int64(1), 0).Return(digest, nil).AnyTimes()
	mockService.EXPECT().GetPostData(gomock.Any(), "tl", int64(1), 0).Return(core.ByteData{Data: body, Kind: core.KindTextPlain}, nil).Times(2)
	mockService.EXPECT().GetPostDataDigest(gomock.Any(), "tl", int64(1), 3).Return(core.DataDigest{}, core.ErrorPostDataNotExist{TimelineID: "tl", LocalID: 1, Index: 3})

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	get := func(index string, header string, value string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl", "post", "index")
		c.SetParamValues("tl", "1", index)
		assert.NoError(t, h.GetData(c))
		return rec
	}

	first := get("0", "", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "hello", first.Body.String())
	assert.Equal(t, etag.CacheControl(core.DefaultCacheMaxAge), first.Header().Get("Cache-Control"))
	tag := first.Header().Get("ETag")
	assert.Equal(t, etag.Quote(digest.ETag), tag)

	cached := get("0", "If-None-Match", tag)
	assert.Equal(t, http.StatusNotModified, cached.Code)
	assert.Equal(t, tag, cached.Header().Get("ETag"))
	assert.Empty(t, cached.Body.String())

	stale := get("0", "If-None-Match", `"AAAA"`)
	assert.Equal(t, http.StatusOK, stale.Code)
	assert.Equal(t, "hello", stale.Body.String())

	garbled := get("0", "If-None-Match", `"unterminated`)
	assert.Equal(t, http.StatusBadRequest, garbled.Code)
	assert.Contains(t, garbled.Body.String(), "100000101")

	missing := get("3", "", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	badIndex := get("x", "", "")
	assert.Equal(t, http.StatusBadRequest, badIndex.Code)
}

func TestHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockPostService(ctrl)
	mockService.EXPECT().HasPostModifyPermission(gomock.Any(), "tl", int64(1), uint(1)).Return(true, nil).Times(2)
	mockService.EXPECT().HasPostModifyPermission(gomock.Any(), "tl", int64(1), uint(2)).Return(false, nil)
	gomock.InOrder(
		mockService.EXPECT().DeletePost(gomock.Any(), "tl", int64(1)).Return(nil),
		mockService.EXPECT().DeletePost(gomock.Any(), "tl", int64(1)).Return(core.ErrorPostNotExist{TimelineID: "tl", LocalID: 1, Deleted: true}),
	)

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	del := func(requester uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl", "post")
		c.SetParamValues("tl", "1")
		if requester != 0 {
			c.Set(core.RequesterIdCtxKey, requester)
		}
		assert.NoError(t, h.Delete(c))
		return rec
	}

	assert.Equal(t, http.StatusForbidden, del(0).Code)
	assert.Equal(t, http.StatusForbidden, del(2).Code)
	assert.Equal(t, http.StatusOK, del(1).Code)
	assert.Equal(t, http.StatusNotFound, del(1).Code)
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockPostService(ctrl)
	mockService.EXPECT().CreatePost(gomock.Any(), "tl", uint(5), core.PostCreateRequest{
		DataList: []core.PostCreateRequestData{
			{Kind: core.KindTextPlain, Data: []byte("hi")},
			{Kind: core.KindImagePng, Data: []byte("png")},
		},
	}).Return(core.Post{TimelineID: "tl", LocalID: 1}, nil)
	mockService.EXPECT().CreatePost(gomock.Any(), "tl", uint(5), gomock.Any()).Return(core.Post{}, core.ErrorInvalidArgument{Field: "dataList", Index: 0, Message: "empty"})

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl")
		c.SetParamValues("tl")
		c.Set(core.RequesterIdCtxKey, uint(5))
		assert.NoError(t, h.Create(c))
		return rec
	}

	created := post(`{"dataList":[{"kind":"text/plain","text":"hi"},{"kind":"image/png","data":"cG5n"}]}`)
	assert.Equal(t, http.StatusCreated, created.Code)

	rejected := post(`{"dataList":[{"kind":"text/plain","text":""}]}`)
	assert.Equal(t, http.StatusBadRequest, rejected.Code)
	assert.Contains(t, rejected.Body.String(), "11060201")
}

func TestHandlerListModifiedSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockPostService(ctrl)
	mockService.EXPECT().ListPosts(gomock.Any(), "tl", &epoch, true).Return([]core.Post{}, nil)

	h := NewHandler(mockService, core.Config{})
	e := echo.New()

	list := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("tl")
		c.SetParamValues("tl")
		assert.NoError(t, h.List(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, list("modifiedSince=2024-04-01T12:00:00Z&includeDeleted=true").Code)
	assert.Equal(t, http.StatusBadRequest, list("modifiedSince=yesterday").Code)
}
