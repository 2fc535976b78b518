package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/siherrmann/tableViewer/model"
	"github.com/siherrmann/tableViewer/view"

	"github.com/labstack/echo/v4"
)

// HandleError is the HTTP error handler of the server. Browser requests get the
// error page, everything else a JSON body. In development mode the error text is
// part of the answer.
func (m *TableHandler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			err = he.Internal
		}
	}

	rc := model.GetRequestContext(c)
	if code >= http.StatusInternalServerError {
		m.logger.Error("Request failed", "status", code, "url", rc.Url, "request_id", rc.RequestID, "error", err)
	} else {
		m.logger.Debug("Request rejected", "status", code, "url", rc.Url, "request_id", rc.RequestID, "error", err)
	}

	detail := ""
	if m.development {
		detail = err.Error()
	}

	var responseErr error
	if c.Request().Method == http.MethodHead {
		responseErr = c.NoContent(code)
	} else if rc.WantsHTML && m.pages != nil {
		responseErr = m.renderErrorPage(c, view.ErrorData{Code: code, Message: message, Detail: detail})
	} else {
		body := map[string]string{"message": message}
		if detail != "" {
			body["error"] = detail
		}
		responseErr = c.JSON(code, body)
	}
	if responseErr != nil {
		m.logger.Error("Failed to write error response", "url", rc.Url, "error", responseErr)
	}
}

func (m *TableHandler) renderErrorPage(c echo.Context, data view.ErrorData) error {
	page, err := m.pages.ErrorPage(data)
	if err != nil {
		return c.String(data.Code, data.Message)
	}
	return render(c, page, data.Code)
}
