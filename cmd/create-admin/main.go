package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/config"
	adminRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/admin"
	authService "github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	"github.com/m04kA/SMC-BarberBooking/internal/session"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (or ADMIN_PASSWORD)")
	role := flag.String("role", "", "optional role label")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	var rolePtr *string
	if *role != "" {
		rolePtr = role
	}

	// Хранилище сессий для создания учетной записи не требуется
	svc := authService.NewService(
		adminRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		nil,
		session.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		cfg.Auth.SessionTTL(),
		log,
	)

	user, err := svc.CreateAdmin(ctx, *email, *password, rolePtr)
	if err != nil {
		log.Fatal("Failed to create admin %s: %v", *email, err)
	}
	log.Info("Admin created (id=%s, email=%s)", user.ID, user.Email)
}
