package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logiport/logiport_backend/internal/apperrors"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/middleware"
)

// pricingHandler handles pricing type and price rule requests.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPricingHandler creates a new pricingHandler.
func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

// registerPricingRoutes sets up the pricing routes under the given group.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricingTypes := rg.Group("/pricing-types")
	{
		pricingTypes.POST("", h.createPricingType)
		pricingTypes.GET("", h.listPricingTypes)
		pricingTypes.GET("/:pricingTypeID", h.getPricingTypeByID)
	}

	priceRules := rg.Group("/price-rules")
	{
		priceRules.POST("", h.createPriceRule)
		priceRules.GET("/best", h.findBestPrice)
		priceRules.POST("/:priceRuleID/deactivate", h.deactivatePriceRule)
	}
}

// createPricingType godoc
// @Summary Create a pricing type
// @Description Creates a pricing type that defines how a goods line total is computed.
// @Tags pricing
// @Accept json
// @Produce json
// @Param pricingType body dto.CreatePricingTypeRequest true "Pricing Type"
// @Success 201 {object} dto.PricingTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-types [post]
func (h *pricingHandler) createPricingType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePricingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	pt, err := h.pricingService.CreatePricingType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create pricing type", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create pricing type"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPricingTypeResponse(pt))
}

// listPricingTypes godoc
// @Summary List pricing types
// @Description Retrieves all pricing types.
// @Tags pricing
// @Produce json
// @Success 200 {array} dto.PricingTypeResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-types [get]
func (h *pricingHandler) listPricingTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pts, err := h.pricingService.ListPricingTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pricing types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list pricing types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPricingTypeResponse(pts))
}

// getPricingTypeByID godoc
// @Summary Get a pricing type
// @Description Retrieves a pricing type by its ID.
// @Tags pricing
// @Produce json
// @Param pricingTypeID path string true "Pricing Type ID"
// @Success 200 {object} dto.PricingTypeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing-types/{pricingTypeID} [get]
func (h *pricingHandler) getPricingTypeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pricingTypeID := c.Param("pricingTypeID")

	pt, err := h.pricingService.GetPricingTypeByID(c.Request.Context(), pricingTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to get pricing type", slog.String("pricing_type_id", pricingTypeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get pricing type"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingTypeResponse(pt))
}

// createPriceRule godoc
// @Summary Create a price rule
// @Description Creates an agreed price for a seller, buyer, material and pricing type combination.
// @Tags pricing
// @Accept json
// @Produce json
// @Param priceRule body dto.CreatePriceRuleRequest true "Price Rule"
// @Success 201 {object} dto.PriceRuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /price-rules [post]
func (h *pricingHandler) createPriceRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePriceRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	rule, err := h.pricingService.CreatePriceRule(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create price rule", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create price rule"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPriceRuleResponse(rule))
}

// findBestPrice godoc
// @Summary Find the best matching price rule
// @Description Resolves the price for a lookup key, preferring an exact delivery method match, then rules without a delivery method, then any active rule.
// @Tags pricing
// @Produce json
// @Param sellerCompanyID query string true "Seller Company ID"
// @Param buyerCompanyID query string true "Buyer Company ID"
// @Param materialID query string true "Material ID"
// @Param pricingTypeID query string true "Pricing Type ID"
// @Param currencyCode query string true "Currency Code"
// @Param deliveryMethodID query string false "Delivery Method ID"
// @Success 200 {object} dto.PriceRuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /price-rules/best [get]
func (h *pricingHandler) findBestPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.BestPriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rule, err := h.pricingService.FindBestPrice(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No matching price rule found"})
			return
		}
		logger.Error("Failed to find best price", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to find best price"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRuleResponse(rule))
}

// deactivatePriceRule godoc
// @Summary Deactivate a price rule
// @Description Marks a price rule inactive so price resolution no longer considers it.
// @Tags pricing
// @Produce json
// @Param priceRuleID path string true "Price Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /price-rules/{priceRuleID}/deactivate [post]
func (h *pricingHandler) deactivatePriceRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceRuleID := c.Param("priceRuleID")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.pricingService.DeactivatePriceRule(c.Request.Context(), priceRuleID, updaterUserID); err != nil {
		logger.Error("Failed to deactivate price rule", slog.String("price_rule_id", priceRuleID), slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate price rule"})
		return
	}

	c.Status(http.StatusNoContent)
}
