package middleware

import (
	"errors"
	"fmt"
	"myStore/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo fallback for errors no handler mapped itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	logger.Error("unhandled request error", err, "path", c.Request().URL.Path)

	if jsonErr := c.JSON(code, map[string]interface{}{"message": message}); jsonErr != nil {
		logger.Error("failed to write error response", jsonErr)
	}
}
