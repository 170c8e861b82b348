package handlers

import (
	"net/http"
	"problem-data-service/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) UserMe(c echo.Context) error {
	// 抓取 user 信息（认证），不要求任何权限标志位
	user, err, statusCode := a.authUserWithCapability(c, capabilityNone)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, user)
}

func (a *App) UserList(c echo.Context) error {
	// 抓取 user 信息（认证），只有管理员可以看用户列表
	_, err, statusCode := a.authUserWithCapability(c, capabilityAdmin)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var users []models.User
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, users)
}
