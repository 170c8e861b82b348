package main

import (
	"fmt"
	"log"
	"problem-data-service/app/server/handlers"
	"problem-data-service/app/server/inits"
	"problem-data-service/app/server/jwt"
	"problem-data-service/app/server/oauth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBPath)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化 OAuth 客户端
	oc, err := oauth.New(cfg.Security.ClientID, cfg.Security.ClientSecret)
	if err != nil {
		l.Fatal("error initializing OAuth client", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, j, oc, cfg.System.DataDir)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	e.GET("/", handlerApp.Root)
	e.GET("/users/me", handlerApp.UserMe)
	e.GET("/users", handlerApp.UserList)
	e.GET("/problems", handlerApp.ProblemList)
	e.GET("/problems/:pid", handlerApp.ProblemFiles)
	e.GET("/token", handlerApp.Login)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
