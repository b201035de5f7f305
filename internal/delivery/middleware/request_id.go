// Package middleware contains transport-agnostic echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "sews/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with a correlation id and derives
// the request-scoped logger that repositories and use cases pick up from ctx.
type RequestIDMiddleware struct {
	base *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{base: logger}
}

// Process keeps a usable X-Request-Id from the caller and mints a uuid otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !usableRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.base.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)

		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// usableRequestID accepts non-empty printable ASCII ids up to maxRequestIDLength bytes.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
