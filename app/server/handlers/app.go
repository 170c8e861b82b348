package handlers

import (
	"context"
	"problem-data-service/app/server/jwt"
	"problem-data-service/app/server/oauth"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OAuthExchanger 登录流程需要的 OAuth 能力， *oauth.Client 是唯一的生产实现
type OAuthExchanger interface {
	AuthorizeURL() string
	Exchange(ctx context.Context, code string) (*oauth.Profile, error)
}

var _ OAuthExchanger = (*oauth.Client)(nil)

type App struct {
	l       *zap.Logger    // 日志
	db      *gorm.DB       // 数据库
	jwt     *jwt.JWT       // JWT ，用于无状态验证
	oauth   OAuthExchanger // GitHub OAuth 客户端
	dataDir string         // 题目数据根目录
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT, oc OAuthExchanger, dataDir string) *App {
	return &App{
		l:       l,
		db:      db,
		jwt:     j,
		oauth:   oc,
		dataDir: dataDir,
	}
}
