package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/middleware"
	"github.com/guttosm/pack-planner/internal/service"
)

// PackSizesHandler provides HTTP handlers for the pack size registry.
type PackSizesHandler struct {
	packs   service.PackService
	logging service.LoggingService
	audit   *middleware.AsyncLogger
}

// NewPackSizesHandler creates a new PackSizesHandler. logging and audit may be
// nil when log storage is disabled; history then answers 503.
func NewPackSizesHandler(packs service.PackService, logging service.LoggingService, audit *middleware.AsyncLogger) *PackSizesHandler {
	return &PackSizesHandler{
		packs:   packs,
		logging: logging,
		audit:   audit,
	}
}

// ListPackSizes handles GET /api/v1/packs requests.
//
// @Summary      List pack sizes
// @Description  Returns the registered pack sizes in ascending order with the registry version
// @Tags         Pack Sizes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PackSizesResponse} "Registered pack sizes"
// @Router       /api/v1/packs [get]
func (h *PackSizesHandler) ListPackSizes(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewPackSizesResponse(h.packs.ListPackSizes(c.Request.Context())))
}

// AddPackSize handles POST /api/v1/packs requests.
//
// @Summary      Add pack size
// @Description  Registers a pack size. Adding a size that is already registered succeeds without a change. Supports idempotency via Idempotency-Key header.
// @Tags         Pack Sizes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackSizeRequest true "Pack size"
// @Success      201 {object} dto.SuccessResponse{data=dto.PackSizeMutationResponse} "Pack size added"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackSizeMutationResponse} "Pack size already registered"
// @Failure      400 {object} dto.ErrorResponse "Invalid pack size"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - operator role required"
// @Failure      503 {object} dto.ErrorResponse "Pack size store unavailable"
// @Security     BearerAuth
// @Router       /api/v1/packs [post]
func (h *PackSizesHandler) AddPackSize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PackSizeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	size := *req.Size

	set, added, err := h.packs.AddPackSize(c.Request.Context(), size)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionAddPackSize, "Pack size add failed", err,
			map[string]interface{}{"size": size})
		builder.ErrorFrom(err)
		return
	}

	resp := dto.PackSizeMutationResponse{Size: size, Added: added, Sizes: set.Sizes, Version: set.Version}
	if !added {
		builder.SuccessOK(resp)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionAddPackSize, "Pack size added",
		map[string]interface{}{"size": size, "sizes": set.Sizes, "version": set.Version})
	builder.SuccessCreated(resp)
}

// RemovePackSize handles DELETE /api/v1/packs/:size requests.
//
// @Summary      Remove pack size
// @Description  Removes a registered pack size
// @Tags         Pack Sizes
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        size path int true "Pack size"
// @Success      204 "Pack size removed"
// @Failure      400 {object} dto.ErrorResponse "Invalid pack size"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - operator role required"
// @Failure      404 {object} dto.ErrorResponse "Pack size not registered"
// @Failure      503 {object} dto.ErrorResponse "Pack size store unavailable"
// @Security     BearerAuth
// @Router       /api/v1/packs/{size} [delete]
func (h *PackSizesHandler) RemovePackSize(c *gin.Context) {
	size, err := strconv.Atoi(c.Param("size"))
	if err != nil {
		NewResponseBuilder(c).ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidSize, i18n.ErrKeyInvalidPackSize, dto.ErrInvalidPathSize)
		return
	}
	h.remove(c, size)
}

// RemovePackSizeBody handles DELETE /api/v1/packs requests carrying {"size": N}.
//
// @Summary      Remove pack size
// @Description  Removes a registered pack size given in the request body
// @Tags         Pack Sizes
// @Accept       json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.PackSizeRequest true "Pack size"
// @Success      204 "Pack size removed"
// @Failure      400 {object} dto.ErrorResponse "Invalid pack size"
// @Failure      404 {object} dto.ErrorResponse "Pack size not registered"
// @Security     BearerAuth
// @Router       /api/v1/packs [delete]
func (h *PackSizesHandler) RemovePackSizeBody(c *gin.Context) {
	req, err := BuildRequest[dto.PackSizeRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	h.remove(c, *req.Size)
}

func (h *PackSizesHandler) remove(c *gin.Context, size int) {
	builder := NewResponseBuilder(c)

	set, err := h.packs.RemovePackSize(c.Request.Context(), size)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionRemovePackSize, "Pack size remove failed", err,
			map[string]interface{}{"size": size})
		builder.ErrorFrom(err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionRemovePackSize, "Pack size removed",
		map[string]interface{}{"size": size, "sizes": set.Sizes, "version": set.Version})
	builder.NoContent()
}

// History handles GET /api/v1/packs/history requests.
//
// @Summary      Pack size history
// @Description  Returns the audit trail of pack size changes, newest first
// @Tags         Pack Sizes
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Maximum entries to return" default(50)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.PackSizeHistoryResponse} "Audit entries"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      503 {object} dto.ErrorResponse "Log storage disabled or unavailable"
// @Security     BearerAuth
// @Router       /api/v1/packs/history [get]
func (h *PackSizesHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.logging == nil {
		builder.ErrorWithCode(http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyHistoryUnavailable, nil)
		return
	}

	limit := queryInt(c, "limit", service.DefaultHistoryLimit)
	skip := queryInt(c, "skip", 0)

	entries, total, err := h.logging.RegistryHistory(c.Request.Context(), limit, skip)
	if err != nil {
		builder.ErrorFrom(err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(dto.PackSizeHistoryResponse{Entries: entries, Total: total})
}

// queryInt reads a non-negative integer query parameter, falling back to def.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}
