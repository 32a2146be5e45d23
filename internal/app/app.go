// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/http"
	"github.com/guttosm/pack-planner/internal/repository"
)

// App holds the wired application and the components that need shutting down.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	db     *DatabaseComponents
	router *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database, cfg.Packs.DefaultSizes)

	var packSizes repository.PackSizesRepositoryInterface
	if db != nil {
		packSizes = db.PackSizesRepo
	}

	services, err := InitializeServices(cfg, packSizes)
	if err != nil {
		_ = db.Close(context.Background())
		return nil, err
	}

	routerComponents := InitializeRouter(services, db, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		db:       db,
		router:   routerComponents,
	}, nil
}

// Close drains the audit logger, stops background goroutines and disconnects
// from MongoDB. Call it after the HTTP server has stopped.
func (a *App) Close(ctx context.Context) error {
	a.router.Stop()
	a.Services.Stop()

	if err := a.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		return err
	}
	return nil
}
