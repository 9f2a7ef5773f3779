package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/config"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/repository"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/schedule"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/seed"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var month string

	flag.IntVar(&op, "op", 0, "operation (1: default roster, 2: random baristas, 3: random month schedule)")
	flag.IntVar(&n, "n", 5, "number of baristas to insert")
	flag.StringVar(&month, "month", "", "month to fill with a random schedule (YYYY-MM, defaults to the current month)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.EnsureSchema(); err != nil {
		logger.Error("unable to ensure schema", "error", err)
		return
	}

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		seeded, err := seed.SeedDefaultRoster(repo, cfg.Avatar.BaseURL)
		if err != nil {
			slog.Error("unable to seed default roster", slog.String("error", err.Error()))
			return
		}
		if !seeded {
			slog.Info("roster not empty, nothing seeded")
		} else {
			slog.Info("default roster seeded")
		}
	case 2:
		if n <= 0 {
			slog.Error("barista count must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			barista := utils.GenerateRandomBarista(cfg.Avatar.BaseURL)
			if err := repo.CreateBarista(barista); err != nil {
				slog.Error("unable to insert barista", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}

		slog.Info("baristas inserted", slog.Int("count", n-cnt))
	case 3:
		now := time.Now()
		year, m := now.Year(), now.Month()
		if month != "" {
			first, _, err := schedule.ParseMonth(month)
			if err != nil {
				slog.Error("invalid month", slog.String("error", err.Error()))
				return
			}
			year, m = first.Year(), first.Month()
		}

		if err := seed.SeedRandomMonth(repo, year, m); err != nil {
			slog.Error("unable to seed month schedule", slog.String("error", err.Error()))
			return
		}
	default:
		slog.Error("unknown operation")
	}
}
