package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(ctx echo.Context, t templ.Component, status ...int) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := t.Render(ctx.Request().Context(), buf); err != nil {
		return err
	}

	if len(status) > 0 {
		return ctx.HTML(status[0], buf.String())
	}
	return ctx.HTML(http.StatusOK, buf.String())
}
