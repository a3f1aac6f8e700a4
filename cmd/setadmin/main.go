// Command setadmin bootstraps the first administrator account. Useful on a
// fresh deployment, before any admin exists to call /api/users/create.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spec-kit/eventpass/internal/auth"
	"github.com/spec-kit/eventpass/internal/config"
	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/observability"
	"github.com/spec-kit/eventpass/internal/persistence"
	"github.com/spec-kit/eventpass/internal/repository"
	"github.com/spec-kit/eventpass/internal/service"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrador", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: setadmin -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	users := service.NewUserService(
		repository.NewUserRepository(pg.PoolHandle()),
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		cfg.Auth.BcryptCost,
	)

	user, err := users.Create(ctx, *email, *password, *name, domain.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Printf("admin %s created (uid %s)\n", user.Email, user.UID)
}
