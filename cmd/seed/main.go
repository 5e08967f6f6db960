package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/kyystore-api/config"
	"github.com/oksasatya/kyystore-api/internal/application"
	pginfra "github.com/oksasatya/kyystore-api/internal/infrastructure/postgres"
	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	envelope, err := fieldcrypt.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("failed to init field encryption: %v", err)
	}

	svc := application.NewService(pginfra.NewUserRepository(pool), nil, envelope, nil, logger)
	seed := application.DemoAdminSeed(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	if err := svc.SeedAdmin(ctx, seed); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", seed.ID, seed.Email, seed.Password)
}
