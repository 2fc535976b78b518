package model

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

type ContextKey string

const REQUEST_CONTEXT_KEY ContextKey = "request_context"

type RequestContext struct {
	Url       string `json:"url"`
	RequestID string `json:"request_id"`
	WantsHTML bool   `json:"wants_html"`
}

// AcceptsHTML reports whether an Accept header prefers an HTML answer (browser navigation).
func AcceptsHTML(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.Split(part, ";")[0])
		if mediaType == echo.MIMETextHTML {
			return true
		}
	}
	return false
}

func SetRequestContext(c echo.Context, value RequestContext) {
	ctx := context.WithValue(c.Request().Context(), REQUEST_CONTEXT_KEY, value)
	c.SetRequest(c.Request().WithContext(ctx))
}

func GetRequestContext(c interface{}) RequestContext {
	var ctx context.Context
	if goCtx, ok := c.(context.Context); ok {
		ctx = goCtx
	} else if echoCtx, ok := c.(echo.Context); ok {
		ctx = echoCtx.Request().Context()
	} else {
		panic("invalid context, must be echo.Context or context.Context")
	}
	value, ok := ctx.Value(REQUEST_CONTEXT_KEY).(RequestContext)
	if !ok {
		return RequestContext{}
	}
	return value
}
