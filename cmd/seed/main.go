// Seeds a handful of demo users and listings for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/oldsell/oldsell-backend/internal/config"
	"github.com/oldsell/oldsell-backend/internal/db"
	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"github.com/oldsell/oldsell-backend/internal/service"
)

type seedListing struct {
	Title       string
	Description string
	Price       float64
	Location    string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(conn); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var count int64
	if err := conn.Model(&model.Item{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 && !strings.EqualFold(os.Getenv("FORCE_SEED"), "true") {
		log.Printf("items already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	userRepo := repository.NewUserRepository(conn)
	itemRepo := repository.NewItemRepository(conn)
	authSvc := service.NewAuthService(userRepo)
	itemSvc := service.NewItemService(itemRepo)

	seller, err := authSvc.Register(ctx, "demo_seller", "seller@example.com", "9990001111", "demopass")
	if err != nil {
		if !errors.Is(err, service.ErrDuplicateIdentity) {
			return fmt.Errorf("seed seller: %w", err)
		}
		seller, err = authSvc.Login(ctx, "demo_seller", "demopass")
		if err != nil {
			return fmt.Errorf("reuse seed seller: %w", err)
		}
	}

	listings := []seedListing{
		{"Old study table", "Solid wood table, minor scratches.", 1500, "Pune"},
		{"Bicycle", "Single speed, recently serviced.", 3200, "Mumbai"},
		{"Bookshelf", "Five shelves, flat-packs for transport.", 900, "Delhi"},
	}
	for _, l := range listings {
		if _, err := itemSvc.Create(ctx, seller.ID, l.Title, l.Description, l.Price, model.DefaultCurrency, l.Location, nil); err != nil {
			return fmt.Errorf("seed listing %q: %w", l.Title, err)
		}
	}

	log.Printf("seeded %d listings for %s", len(listings), seller.Username)
	return nil
}
