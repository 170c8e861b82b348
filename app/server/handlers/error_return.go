package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorMessage struct {
	Message string `json:"message"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	// 认证类失败带上质询头
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	return c.JSON(statusCode, &errorMessage{
		Message: http.StatusText(statusCode),
	})
}
