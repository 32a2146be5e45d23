package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/service"
)

// Handler provides HTTP handlers for pack computation routes.
type Handler struct {
	packs service.PackService
}

// NewHandler creates a new Handler instance.
func NewHandler(packs service.PackService) *Handler {
	return &Handler{packs: packs}
}

// CalculatePacks handles GET /api/v1/calculate requests.
//
// @Summary      Calculate packs for order
// @Description  Computes the pack plan for an order using the registered pack sizes. The plan ships at least the ordered quantity using the fewest packs, then the fewest items.
// @Tags         Packs
// @Produce      json
// @Param        quantity query int true "Number of items ordered" minimum(1)
// @Success      200 {object} dto.SuccessResponse{data=model.PackResult} "Computed plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity"
// @Failure      422 {object} dto.ErrorResponse "No pack sizes configured"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/calculate [get]
func (h *Handler) CalculatePacks(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildQuery[dto.CalculatePacksRequest](c)
	if err != nil {
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity, err)
		return
	}

	h.respond(c, builder, *req.Quantity, nil)
}

// CalculatePacksBody handles POST /api/v1/calculate requests.
//
// @Summary      Calculate packs for order
// @Description  Computes the pack plan for an order. When pack_sizes is given, those sizes are used for this request only and the registry is left untouched. Supports idempotency via Idempotency-Key header.
// @Tags         Packs
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculatePacksRequest true "Order information"
// @Success      200 {object} dto.SuccessResponse{data=model.PackResult} "Computed plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid body, quantity or pack size"
// @Failure      422 {object} dto.ErrorResponse "No pack sizes configured"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/calculate [post]
func (h *Handler) CalculatePacksBody(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CalculatePacksRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.respond(c, builder, *req.Quantity, req.PackSizes)
}

func (h *Handler) respond(c *gin.Context, builder *ResponseBuilder, quantity int, sizes []int) {
	var (
		result model.PackResult
		err    error
	)
	if len(sizes) > 0 {
		result, err = h.packs.ComputePacksWithSizes(c.Request.Context(), quantity, sizes)
	} else {
		result, err = h.packs.ComputePacks(c.Request.Context(), quantity)
	}
	if err != nil {
		builder.ErrorFrom(err)
		return
	}

	builder.SuccessOK(result)
}
