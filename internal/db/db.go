package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/oldsell/oldsell-backend/internal/config"
	"github.com/oldsell/oldsell-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func BuildDSN(cfg *config.Config) string {
	addr := cfg.DBHost

	if strings.HasPrefix(cfg.DBHost, "tcp(") {
		// already includes tcp()
	} else if strings.HasPrefix(cfg.DBHost, "unix(") {
		// already includes unix()
	} else if strings.HasPrefix(cfg.DBHost, "/") {
		addr = fmt.Sprintf("unix(%s)", cfg.DBHost)
	} else {
		addr = fmt.Sprintf("tcp(%s:%s)", cfg.DBHost, cfg.DBPort)
	}

	return fmt.Sprintf("%s:%s@%s/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.DBUser, cfg.DBPassword, addr, cfg.DBName)
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dial = mysql.Open(BuildDSN(cfg))
	default:
		dial = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "mysql" {
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
	} else {
		// A single connection keeps every statement on the same sqlite
		// handle; with :memory: each new connection would otherwise see
		// its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates the tables on first run and keeps them in sync after.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Item{}, &model.ChatMessage{})
}

// Bootstrap seeds the default admin account. Safe to run on every start.
func Bootstrap(db *gorm.DB) error {
	var admin model.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	upi := "your-upi-id@bank"
	admin = model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@example.com",
		Phone:        "0000000000",
		IsAdmin:      true,
		UPIID:        &upi,
	}
	return db.Create(&admin).Error
}
