package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/oldsell/oldsell-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// Every statement must hit the same in-memory sqlite handle.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.ChatMessage{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
