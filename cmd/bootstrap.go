package cmd

import (
	"fmt"

	"wardrobe/core/cache"
	"wardrobe/core/config"
	"wardrobe/core/database"
	"wardrobe/core/logger"
	"wardrobe/core/storage"
	"wardrobe/feature/clothing"
	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/clothing/registry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by every command.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
}

// bootstrap loads configuration and opens the storage client and the optional
// emulator database.
func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Server.IsValidHotel() {
		logg.Warn("Unknown hotel, using habbo.com", zap.String("hotel", cfg.Server.Hotel))
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed, registry disabled", zap.Error(err))
	} else {
		db = conn
		logg = logg.With(zap.String("server", cfg.Server.Emulator))
		logg.Info("Connected to emulator database")
	}

	return &deps{cfg: cfg, logger: logg, store: store, db: db}, nil
}

// source returns the configured feed source.
func (r *deps) source() (feeds.Source, error) {
	return feeds.NewSource(r.cfg.Feeds, r.cfg.Server.Origin(), r.store, r.cfg.Storage.Bucket, r.logger)
}

// upstream returns the live HTTP feeds regardless of the configured source.
func (r *deps) upstream() feeds.Source {
	return feeds.NewHTTPSource(r.cfg.Feeds, r.cfg.Server.Origin(), r.logger)
}

// options wires the registry when the database is available.
func (r *deps) options() []clothing.Option {
	if r.db == nil {
		return nil
	}
	reg, err := registry.New(r.db, r.cfg.Server.Emulator, r.logger)
	if err != nil {
		r.logger.Warn("Clothing registry disabled", zap.Error(err))
		return nil
	}
	return []clothing.Option{clothing.WithRegistry(reg)}
}

// catalogService builds a standalone catalog service for one-shot commands.
func (r *deps) catalogService() (*clothing.Service, error) {
	src, err := r.source()
	if err != nil {
		return nil, err
	}
	return clothing.NewService(src, cache.New(r.cfg.Cache, r.logger), r.cfg.Server.Origin(), r.logger, r.options()...)
}
