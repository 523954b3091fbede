package main

import (
	"fmt"
	"log/slog"
	"os"

	"likeme-post-service/internal/infrastructure/config"
	"likeme-post-service/internal/infrastructure/logger"
	"likeme-post-service/internal/infrastructure/outbound/repository/postgres/migrations"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	migrator, err := migrations.New(cfg.Database.MigrationsPath, cfg.Database.DSN(), log)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrator.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		log.Error("Unknown command, expected up|down|version", slog.String("command", command))
		migrator.Close()
		os.Exit(2)
	}

	if err != nil {
		log.Error("Migration command failed", slog.String("command", command), slog.String("error", err.Error()))
		migrator.Close()
		os.Exit(1)
	}
}
