package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenant_admin_v1/internal/model"
)

// ==================== 测试辅助 ====================

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Account{},
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Tenant{},
	); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	return db
}
