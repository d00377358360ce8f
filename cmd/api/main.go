package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/oldsell/oldsell-backend/internal/config"
	"github.com/oldsell/oldsell-backend/internal/db"
	"github.com/oldsell/oldsell-backend/internal/server"
	"github.com/oldsell/oldsell-backend/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("migrate error: %v", err)
	}
	if err := db.Bootstrap(conn); err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if err := upload.NewStore(cfg.UploadDir).EnsureDir(); err != nil {
		log.Fatalf("upload dir error: %v", err)
	}

	srv, err := server.New(conn, cfg)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
