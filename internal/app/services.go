package app

import (
	"fmt"
	"reflect"

	"github.com/giantswarm/wirecheck/internal/business"
	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/container"
	"github.com/giantswarm/wirecheck/internal/metrics"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

// Services holds the composed container and the infrastructure around it.
type Services struct {
	// Container holds every business service registration.
	Container *container.Container

	// Metrics observes validation runs and backs /metrics.
	Metrics *metrics.Recorder

	// Storage keeps saved validation reports.
	Storage *config.Storage
}

// InitializeServices composes the container and applies cfg.Extra.
func InitializeServices(cfg *Config) (*Services, error) {
	c := container.New()
	if err := ComposeServices(c); err != nil {
		return nil, fmt.Errorf("failed to compose services: %w", err)
	}

	for i, register := range cfg.Extra {
		if err := register(c); err != nil {
			return nil, fmt.Errorf("failed to apply extra registration %d: %w", i, err)
		}
	}

	logging.Info("Services", "Registered %d services", c.Len())
	return &Services{
		Container: c,
		Metrics:   metrics.NewRecorder(),
		Storage:   config.NewStorage(cfg.ConfigPath),
	}, nil
}

// ComposeServices registers the business services. The order is the order
// validation walks the graph in.
func ComposeServices(c *container.Container) error {
	steps := []func() error{
		func() error { return container.ProvideInstance[business.Clock](c, business.SystemClock{}) },
		func() error { return container.Provide[*business.Store](c, business.NewStore) },
		func() error {
			return container.ProvideOpen(c, "Repository[T]", func(r container.Resolver, t reflect.Type) (any, error) {
				db, err := container.Resolve[*business.Store](r)
				if err != nil {
					return nil, err
				}
				return business.RepositoryFor(t, db)
			})
		},
		func() error {
			return container.ProvideFactory(c, func(container.Resolver) (business.Notifier, error) {
				return business.LogNotifier{Prefix: "wirecheck/"}, nil
			})
		},
		func() error { return container.Provide[*business.CatalogService](c, business.NewCatalogService) },
		func() error { return container.Provide[business.PriceLists](c, business.NewPriceListService) },
		func() error { return container.Provide[*business.PromotionService](c, business.NewPromotionService) },
		func() error { return container.Provide[*business.DocumentService](c, business.NewDocumentService) },
		func() error { return container.Provide[*business.StoreService](c, business.NewStoreService) },
		func() error { return container.Provide[*business.ChatService](c, business.NewChatService) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
