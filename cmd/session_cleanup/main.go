package main

import (
	"context"
	"log"
	"time"

	"crochetstudio/internal/config"
	"crochetstudio/internal/database"
	"crochetstudio/internal/session"

	"github.com/joho/godotenv"
)

// Deletes expired wizard sessions when SESSION_STORE=database.
// Memory and Redis stores expire entries on their own.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.SessionStore != config.StoreDatabase {
		log.Printf("session cleanup skipped: store=%s expires entries itself", cfg.SessionStore)
		return
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := session.NewGormStore(db).PurgeExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup wizard_sessions failed: %v", err)
	}
	log.Printf("session cleanup completed: wizard_sessions=%d", n)
}
