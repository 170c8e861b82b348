package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"Hello": "World",
	})
}
