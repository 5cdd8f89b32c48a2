// pkg/database/postgres.go
package database

import (
	"fmt"
	"time"

	"NewsRadar/pkg/config"
	"NewsRadar/pkg/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresDB 数据库连接
type PostgresDB struct {
	db *gorm.DB
}

// NewPostgresDB 创建数据库连接并迁移数据表
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	dbCfg := cfg.Database.Postgres

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host, dbCfg.Port, dbCfg.User, dbCfg.Password, dbCfg.DBName, dbCfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}

	// 连接池参数
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&model.EnrichedNews{}); err != nil {
		return nil, fmt.Errorf("迁移数据表失败: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

// Close 关闭数据库连接
func (p *PostgresDB) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
