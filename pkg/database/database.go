package database

import (
	"fmt"
	"shortmap-platform/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSQLite 打开本地 SQLite 文件，单机部署的默认后端
func InitSQLite(path string) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %v", err)
	}

	if err := migrate(connection); err != nil {
		return nil, err
	}
	return connection, nil
}

// InitMySQL 连接 MySQL
func InitMySQL(host string, port int, user, password, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbName)

	connection, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %v", err)
	}

	if err := migrate(connection); err != nil {
		return nil, err
	}
	return connection, nil
}

// 自动迁移表
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.MappingBlob{}); err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}
	return nil
}
