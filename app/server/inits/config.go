package inits

import (
	"fmt"
	"os"
	"problem-data-service/app/server/config"
	"strings"

	"github.com/caarlos0/env/v11"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 自动映射环境变量
	if err = env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	// MODE 不是简单的布尔值，单独处理
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	return cfg, nil
}
