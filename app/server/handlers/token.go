package handlers

import (
	"context"
	"errors"
	"net/http"
	"problem-data-service/app/server/constants"
	"problem-data-service/app/server/jwt"
	"problem-data-service/app/server/models"
	"problem-data-service/app/server/oauth"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *App) Login(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		// 还没有授权码，引导用户去 GitHub 授权
		return c.Redirect(http.StatusFound, a.oauth.AuthorizeURL())
	}

	rctx := c.Request().Context()

	// 用授权码换取用户资料
	profile, err := a.oauth.Exchange(rctx, code)
	if err != nil {
		a.l.Error("failed to exchange oauth code", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 首次登录时建档
	user, err := a.upsertUser(rctx, profile)
	if err != nil {
		a.l.Error("failed to upsert user", zap.Int64("id", profile.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &loginToken{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// upsertUser 按 GitHub 的数字 id 建档；已有记录时原样返回，不刷新资料字段。
// 这里的数据来自 GitHub 而非用户提交，因此可以信任，直接创建入库
func (a *App) upsertUser(ctx context.Context, profile *oauth.Profile) (*models.User, error) {
	var user models.User
	err := a.db.WithContext(ctx).First(&user, "id = ?", profile.ID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:       profile.ID,
		Username: profile.Login,
		Email:    profile.Email,
		Nickname: profile.Name,
	}
	if err := a.db.WithContext(ctx).Create(&user).Error; err != nil {
		// 两个并发的首次登录可能撞上唯一约束，输掉的一方直接复用已经插入的记录
		var existing models.User
		if rerr := a.db.WithContext(ctx).First(&existing, "id = ?", profile.ID).Error; rerr == nil {
			return &existing, nil
		}
		return nil, err
	}

	return &user, nil
}
