package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	authservice "github.com/ThomasSalomon/chicosAPP-V2/auth/service"
	authstorage "github.com/ThomasSalomon/chicosAPP-V2/auth/storage"
	authmem "github.com/ThomasSalomon/chicosAPP-V2/auth/storage/mem"
	authsqlite "github.com/ThomasSalomon/chicosAPP-V2/auth/storage/sqlite"
	cachemem "github.com/ThomasSalomon/chicosAPP-V2/internal/cache/mem"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/config"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/logger"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/service"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"
	storagemem "github.com/ThomasSalomon/chicosAPP-V2/internal/storage/mem"
	storagesqlite "github.com/ThomasSalomon/chicosAPP-V2/internal/storage/sqlite"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/server.toml", "path to the server config")
	flag.Parse()

	cfg, err := config.NewFromFile(*configPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.Debug)
	ctx := context.Background()

	var (
		teams     storage.TeamStorage
		players   storage.PlayerStorage
		authStore authstorage.AuthStorage
	)
	switch cfg.Server.StorageBackend {
	case "memory":
		st := storagemem.New(l)
		teams, players = st, st
		authStore = authmem.New(l)
	case "", "sqlite":
		st, err := storagesqlite.New(l, cfg.Server.SqliteFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				l.WithError(err).Error("closing academy storage")
			}
		}()
		authSt, err := authsqlite.New(l, cfg.Server.Auth.SqliteFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := authSt.Close(); err != nil {
				l.WithError(err).Error("closing auth storage")
			}
		}()
		teams, players = st, st
		authStore = authSt
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Server.StorageBackend)
	}

	authService, err := authservice.New(ctx, cfg.Server.Auth, authStore)
	if err != nil {
		return err
	}
	academy := service.New(l, teams, players, cachemem.New(cachemem.DefaultTTL))

	server, err := web.New(l, academy, cfg.Server, authService)
	if err != nil {
		return err
	}
	return server.Serve()
}
