package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashier_app/internal/core/ports/services"
	"github.com/SscSPs/cashier_app/internal/dto"
	"github.com/SscSPs/cashier_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// changeHandler handles HTTP requests related to change-making.
type changeHandler struct {
	changeService portssvc.ChangeSvcFacade
}

// newChangeHandler creates a new changeHandler.
func newChangeHandler(cs portssvc.ChangeSvcFacade) *changeHandler {
	return &changeHandler{
		changeService: cs,
	}
}

// RegisterChangeRoutes registers routes related to change-making.
func RegisterChangeRoutes(rg *gin.RouterGroup, changeService portssvc.ChangeSvcFacade) {
	h := newChangeHandler(changeService)

	rg.GET("/denominations", h.listDenominations)

	change := rg.Group("/change")
	{
		change.POST("", h.calculateChange)
		change.POST("/units", h.breakDownUnits)
		change.GET("", h.listCalculations)
		change.GET("/:calculationID", h.getCalculation)
	}
}

// listDenominations godoc
// @Summary List denominations
// @Description Returns the cash drawer, largest denomination first
// @Tags change
// @Produce  json
// @Success 200 {array} dto.DenominationResponse
// @Router /denominations [get]
func (h *changeHandler) listDenominations(c *gin.Context) {
	denominations := h.changeService.ListDenominations(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListDenominationResponse(denominations))
}

// calculateChange godoc
// @Summary Calculate change for a purchase
// @Description Computes amount paid minus price in cents and breaks it into bills and coins
// @Tags change
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CalculateChangeRequest true "Price and amount paid"
// @Success 201 {object} dto.ChangeCalculationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to calculate change"
// @Router /change [post]
func (h *changeHandler) calculateChange(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CalculateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to calculate change",
		slog.String("price", req.Price.String()),
		slog.String("amount_paid", req.AmountPaid.String()),
	)

	calc, err := h.changeService.CalculateChange(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating change", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to calculate change in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate change"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChangeCalculationResponse(calc))
}

// breakDownUnits godoc
// @Summary Break down a cent amount
// @Description Breaks a raw amount of cents into denominations. Negative amounts report a shortfall.
// @Tags change
// @Accept  json
// @Produce  json
// @Param   units body dto.BreakDownUnitsRequest true "Amount in cents"
// @Success 200 {object} dto.ChangeResultResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /change/units [post]
func (h *changeHandler) breakDownUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.BreakDownUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BreakDownUnits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result := h.changeService.BreakDownUnits(c.Request.Context(), domain.MinorUnits(*req.ChangeUnits))
	c.JSON(http.StatusOK, dto.ToChangeResultResponse(result))
}

// getCalculation godoc
// @Summary Get a recorded calculation
// @Description Retrieves a past change calculation by ID
// @Tags change
// @Produce  json
// @Param   calculationID path string true "Calculation ID (UUID)"
// @Success 200 {object} dto.ChangeCalculationResponse
// @Failure 400 {object} ErrorResponse "Invalid calculation ID"
// @Failure 404 {object} ErrorResponse "Calculation not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve calculation"
// @Router /change/{calculationID} [get]
func (h *changeHandler) getCalculation(c *gin.Context) {
	calculationID := c.Param("calculationID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("calculation_id", calculationID))

	calc, err := h.changeService.GetCalculationByID(c.Request.Context(), calculationID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Calculation not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Calculation not found"})
		default:
			logger.Error("Failed to get calculation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve calculation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeCalculationResponse(calc))
}

// listCalculations godoc
// @Summary List recent calculations
// @Description Retrieves the most recent change calculations, newest first
// @Tags change
// @Produce  json
// @Param   limit query int false "Maximum number of calculations (1-100)"
// @Param   nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListCalculationsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Failed to list calculations"
// @Router /change [get]
func (h *changeHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListCalculationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCalculations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.changeService.ListCalculations(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid list request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list calculations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list calculations"})
		return
	}

	logger.Info("Calculations listed successfully", slog.Int("count", len(resp.Calculations)))
	c.JSON(http.StatusOK, resp)
}
