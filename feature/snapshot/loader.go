package snapshot

import (
	"menu-manager/core/storage"
	"menu-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the snapshot feature. It needs both the catalog and a storage client.
func NewFeature(catalogSvc *catalog.Service, client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	if catalogSvc == nil || client == nil {
		return &Feature{}
	}
	svc := NewService(catalogSvc, client, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
