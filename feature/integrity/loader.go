package integrity

import (
	"wardrobe/core/storage"
	"wardrobe/feature/clothing/feeds"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Integrity feature.
func NewFeature(client storage.Client, bucket, prefix string, upstream feeds.Source, logger *zap.Logger, db *gorm.DB, emulator string) *Feature {
	svc := NewService(client, bucket, prefix, upstream, logger, db, emulator)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service exposes the checks to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
