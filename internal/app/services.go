// Package app provides service initialization.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/repository"
	"github.com/guttosm/pack-planner/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packs    *service.PackServiceImpl
	Registry *service.Registry
	Tokens   service.TokenService
	APIKeys  *service.APIKeyVerifier
}

// InitializeServices builds the registry, optimizer and pack service. packSizes
// may be nil for an in-memory registry.
func InitializeServices(cfg config.Config, packSizes repository.PackSizesRepositoryInterface) (*ServiceComponents, error) {
	defaults := cfg.Packs.DefaultSizes
	if len(defaults) == 0 {
		defaults = service.DefaultPackSizes
	}
	for _, size := range defaults {
		if size <= 0 {
			return nil, fmt.Errorf("default pack size %d: %w", size, service.ErrInvalidSize)
		}
	}

	registry := service.NewRegistry(packSizes)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	registry.Load(ctx, defaults)
	cancel()

	var opts []service.PackOption
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	packs := service.NewPackService(registry, service.NewOptimizer(), opts...)
	log.Info().Ints("default_sizes", defaults).Int("cache_size", cfg.Cache.Size).Msg("Pack service initialized")

	components := &ServiceComponents{
		Packs:    packs,
		Registry: registry,
		APIKeys:  service.NewAPIKeyVerifier(cfg.Auth.APIKeys, cfg.Auth.APIKeyHashes),
	}
	if cfg.Auth.Enabled {
		components.Tokens = service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth))
		if components.APIKeys.Empty() {
			log.Warn().Msg("Authentication enabled without API keys; tokens cannot be issued")
		}
	}
	return components, nil
}

// Stop releases background resources held by the services.
func (s *ServiceComponents) Stop() {
	if s == nil || s.Packs == nil {
		return
	}
	if c := s.Packs.Cache(); c != nil {
		c.Stop()
	}
}
