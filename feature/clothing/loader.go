package clothing

import (
	"wardrobe/core/cache"
	"wardrobe/feature/clothing/feeds"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Clothing feature.
func NewFeature(source feeds.Source, c *cache.Cache, host string, logger *zap.Logger, opts ...Option) (*Feature, error) {
	svc, err := NewService(source, c, host, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &Feature{service: svc, handler: NewHandler(svc)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "clothing"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service exposes the catalog service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
