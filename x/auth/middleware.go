// Package auth propagates the requester identity resolved by the gateway
package auth

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/timeline/core"
)

var tracer = otel.Tracer("auth")

// ReceiveGatewayAuthPropagation stores the requester id header in the echo context.
// Unparsable ids are dropped so the request continues anonymously.
func ReceiveGatewayAuthPropagation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.ReceiveGatewayAuthPropagation")
		defer span.End()

		reqIdHeader := c.Request().Header.Get(core.RequesterIdHeader)
		if reqIdHeader != "" {
			id, err := strconv.ParseUint(reqIdHeader, 10, 64)
			if err != nil {
				span.RecordError(err)
			} else {
				c.Set(core.RequesterIdCtxKey, uint(id))
				span.SetAttributes(attribute.String("RequesterId", reqIdHeader))
			}
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// GetRequester returns the propagated requester id
func GetRequester(c echo.Context) (uint, bool) {
	id, ok := c.Get(core.RequesterIdCtxKey).(uint)
	return id, ok
}

// RequireRequester rejects anonymous requests
func RequireRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, span := tracer.Start(c.Request().Context(), "Auth.RequireRequester")
		defer span.End()

		if _, ok := GetRequester(c); !ok {
			return c.JSON(http.StatusForbidden, core.ErrorResponse{
				Code:    core.ErrorCodeForbid,
				Message: "requester not found",
			})
		}

		return next(c)
	}
}
