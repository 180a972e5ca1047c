// Package database 负责 MySQL 与 Redis 的连接初始化。
package database

import (
	"fmt"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitMySQL 初始化 MySQL 数据库连接，并为评论、预订和反馈建表。
func InitMySQL(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", err)
	}

	// 配置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", err)
	}

	sqlDB.SetMaxIdleConns(10)           // 设置空闲连接池中连接的最大数量
	sqlDB.SetMaxOpenConns(100)          // 设置打开数据库连接的最大数量
	sqlDB.SetConnMaxLifetime(time.Hour) // 设置了连接可复用的最大时间

	if err := migrate(DB); err != nil {
		log.Fatal("failed to migrate database", err)
	}

	log.Info("MySQL database connected successfully")
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Review{}, &model.Reservation{}, &model.Feedback{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
