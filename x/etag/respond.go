package etag

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/timeline/core"
)

var tracer = otel.Tracer("etag")

// Loader produces the representation only when it has to be sent
type Loader func() (contentType string, body []byte, err error)

// CacheControl is the caching policy attached to validated responses
func CacheControl(maxAge time.Duration) string {
	return "no-cache, private, must-revalidate, max-age=" + strconv.FormatInt(int64(maxAge/time.Second), 10)
}

func setValidators(c echo.Context, digest core.DataDigest, maxAge time.Duration) {
	header := c.Response().Header()
	header.Set("ETag", Quote(digest.ETag))
	header.Set("Cache-Control", CacheControl(maxAge))
	if !digest.LastModified.IsZero() {
		header.Set("Last-Modified", digest.LastModified.UTC().Format(http.TimeFormat))
	}
}

// Respond answers a GET with 304 when the client copy is current, 400 on a
// malformed conditional header, and otherwise the loaded body with validators.
// If-Modified-Since is consulted only when If-None-Match is absent.
func Respond(c echo.Context, digest core.DataDigest, maxAge time.Duration, load Loader) error {
	_, span := tracer.Start(c.Request().Context(), "Etag.Respond")
	defer span.End()

	request := c.Request()

	if value := request.Header.Get("If-None-Match"); value != "" {
		ifNoneMatch, err := ParseIfNoneMatch(value)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusBadRequest, core.ErrorResponse{
				Code:    core.ErrorCodeIfNoneMatchBadFormat,
				Message: err.Error(),
			})
		}
		if Matches(digest.ETag, ifNoneMatch) {
			setValidators(c, digest, maxAge)
			return c.NoContent(http.StatusNotModified)
		}
	} else if value := request.Header.Get("If-Modified-Since"); value != "" {
		since, err := http.ParseTime(value)
		if err != nil {
			badFormat := core.NewErrorBadFormat("If-Modified-Since", value)
			span.RecordError(badFormat)
			return c.JSON(http.StatusBadRequest, core.ErrorResponse{
				Code:    core.ErrorCodeIfModifiedSinceBadFormat,
				Message: badFormat.Error(),
			})
		}
		// http dates carry whole seconds
		if !digest.LastModified.IsZero() && !digest.LastModified.Truncate(time.Second).After(since) {
			setValidators(c, digest, maxAge)
			return c.NoContent(http.StatusNotModified)
		}
	}

	contentType, body, err := load()
	if err != nil {
		span.RecordError(err)
		return err
	}

	setValidators(c, digest, maxAge)
	return c.Blob(http.StatusOK, contentType, body)
}
