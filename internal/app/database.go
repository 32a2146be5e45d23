// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/repository"
	"github.com/guttosm/pack-planner/internal/service"
)

// Circuit breaker names, also used as health check and metric labels.
const (
	PackSizesBreakerName = "mongodb_pack_sizes"
	LogsBreakerName      = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	PackSizesRepo           repository.PackSizesRepositoryInterface
	LoggingService          service.LoggingService
	PackSizesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the guarded repositories.
// Returns nil if the database is disabled or the connection fails; the service
// then runs with an in-memory registry and no history.
func InitializeDatabase(cfg config.DatabaseConfig, defaultPackSizes []int) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if ttlDays := int(cfg.LogsTTL.Hours() / 24); ttlDays > 0 {
		if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}

	return newDatabaseComponents(db, cfg, defaultPackSizes)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig, defaultPackSizes []int) *DatabaseComponents {
	packSizesCB := newBreaker(cfg, PackSizesBreakerName)
	logsCB := newBreaker(cfg, LogsBreakerName)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	packSizesRepo := repository.NewPackSizesRepositoryWithCircuitBreaker(repository.NewPackSizesRepository(db), packSizesCB)

	if err := seedPackSizes(packSizesRepo, defaultPackSizes); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default pack sizes")
	}

	return &DatabaseComponents{
		DB:                      db,
		PackSizesRepo:           packSizesRepo,
		LoggingService:          service.NewLoggingService(logsRepo),
		PackSizesCircuitBreaker: packSizesCB,
		LogsCircuitBreaker:      logsCB,
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))

	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// seedPackSizes stores the defaults when the collection is empty.
func seedPackSizes(repo repository.PackSizesRepositoryInterface, defaultSizes []int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		return nil
	}

	if len(defaultSizes) == 0 {
		defaultSizes = service.DefaultPackSizes
	}
	for _, size := range defaultSizes {
		if size <= 0 {
			continue
		}
		if _, err := repo.Insert(ctx, size, service.SystemOperator); err != nil {
			return err
		}
	}
	log.Info().Ints("sizes", defaultSizes).Msg("Seeded default pack sizes")
	return nil
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
