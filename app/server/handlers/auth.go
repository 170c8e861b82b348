package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"problem-data-service/app/server/models"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// capability 权限标志位，对应用户记录上的三个开关
type capability int

const (
	capabilityNone capability = iota // 只要求令牌有效，不检查标志位
	capabilityRead
	capabilityWrite
	capabilityAdmin
)

// authUser 解析请求中的令牌并定位对应的用户记录
func (a *App) authUser(c echo.Context) (*models.User, error, int) {
	// 提取 token
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing auth token"), http.StatusUnauthorized
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return nil, fmt.Errorf("invalid auth header: %s", authHeader), http.StatusUnauthorized
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return nil, fmt.Errorf("unknown auth method: %s", splits[0]), http.StatusUnauthorized
	}

	// 验证 token
	jwtUser, err := a.jwt.ParseUser(splits[1])
	if err != nil {
		// 无效的 token
		return nil, fmt.Errorf("failed to parse token: %w", err), http.StatusUnauthorized
	}

	// 定位用户，令牌有效但用户已经不存在时同样按未认证处理
	var user models.User
	if err := a.db.WithContext(c.Request().Context()).First(&user, "id = ?", jwtUser.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d not found", jwtUser.ID), http.StatusUnauthorized
		} else {
			return nil, fmt.Errorf("failed to find user: %w", err), http.StatusInternalServerError
		}
	}

	return &user, nil, http.StatusOK
}

// authUserWithCapability 在 authUser 的基础上检查对应的权限标志位
func (a *App) authUserWithCapability(c echo.Context, cap capability) (*models.User, error, int) {
	user, err, statusCode := a.authUser(c)
	if err != nil {
		return nil, err, statusCode
	}

	var allowed bool
	switch cap {
	case capabilityNone:
		allowed = true
	case capabilityRead:
		allowed = user.Readable
	case capabilityWrite:
		allowed = user.Writeable
	case capabilityAdmin:
		allowed = user.Admin
	}

	if !allowed {
		return nil, fmt.Errorf("user %d lacks required capability", user.ID), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}
