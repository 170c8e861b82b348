package inits

import (
	"fmt"
	"problem-data-service/app/server/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func DB(path string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(sqlite.Open(path), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
	)
}
