package app

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/creamery-api/internal/api"
	"github.com/vietanh2810/creamery-api/internal/config"
	"github.com/vietanh2810/creamery-api/internal/db"
	"github.com/vietanh2810/creamery-api/internal/logger"
	"github.com/vietanh2810/creamery-api/internal/repository/dao"
)

const defaultConfigPath = "./cmd/app/config.yml"

func bootstrap(configPath string) (*config.AppConfig, *gorm.DB, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}

	database, err := db.Open(conf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return conf, database, nil
}

func closeDB(database *gorm.DB) {
	if err := db.Close(database); err != nil {
		zap.L().Error("failed to close database", zap.Error(err))
	}
}

func reloadLogLevel(updated *config.AppConfig) {
	if err := logger.SetLevel(updated.Log.Level); err != nil {
		zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
		return
	}

	zap.L().Info("log level reloaded", zap.Stringer("level", logger.Level()))
}

// Start serves the API until the listener fails.
func Start(configPath string) error {
	conf, database, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	if conf.Database.AutoMigrate {
		if err = dao.InitTables(database); err != nil {
			return fmt.Errorf("failed to migrate tables -> %w", err)
		}
	}

	if err = config.Watch(configPath, reloadLogLevel); err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	s := api.NewServer(conf, database)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// Migrate creates or updates the store, employee and inventory tables.
func Migrate(configPath string) error {
	_, database, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	zap.L().Info("tables migrated")

	return nil
}
