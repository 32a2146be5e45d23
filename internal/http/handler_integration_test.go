//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/repository"
	"github.com/guttosm/pack-planner/internal/service"
	"github.com/guttosm/pack-planner/internal/testutil"
)

func TestIntegration_RegistryLifecycle(t *testing.T) {
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	defer func() { _ = db.Close(ctx) }()

	sizesRepo := repository.NewPackSizesRepository(db)
	logging := service.NewLoggingService(repository.NewLogsRepository(db))
	audit := middleware.NewAsyncLogger(logging, middleware.DefaultAsyncLoggerConfig())

	for _, size := range []int{250, 500} {
		_, err := sizesRepo.Insert(ctx, size, service.SystemOperator)
		require.NoError(t, err)
	}

	registry := service.NewRegistry(sizesRepo)
	registry.Load(ctx, nil)
	packs := service.NewPackService(registry, service.NewOptimizer())

	router := newTestRouter(t, packs, func(cfg *RouterConfig) {
		cfg.LoggingService = logging
		cfg.AuditLogger = audit
	})

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/packs", `{"size": 750}`).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/v1/packs", `{"size": 1000}`).Code)
	require.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/v1/packs/1000", "").Code)

	stored, err := sizesRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{250, 500, 750}, stored)

	result := decodeData[model.PackResult](t, do(router, http.MethodGet, "/api/v1/calculate?quantity=700", ""))
	assert.Equal(t, []model.Pack{{Size: 750, Quantity: 1}}, result.Packs)

	reloaded := service.NewRegistry(sizesRepo)
	assert.Equal(t, []int{250, 500, 750}, reloaded.Load(ctx, nil).Sizes)

	audit.Stop()

	w := do(router, http.MethodGet, "/api/v1/packs/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeData[dto.PackSizeHistoryResponse](t, w)
	assert.Equal(t, int64(3), history.Total)

	actions := map[string]int{}
	for _, e := range history.Entries {
		actions[e.ActionType]++
		assert.Equal(t, service.SystemOperator, e.Operator)
	}
	assert.Equal(t, map[string]int{model.ActionAddPackSize: 2, model.ActionRemovePackSize: 1}, actions)

	page := decodeData[dto.PackSizeHistoryResponse](t, do(router, http.MethodGet, "/api/v1/packs/history?limit=1", ""))
	assert.Len(t, page.Entries, 1)
	assert.Equal(t, int64(3), page.Total)
}
