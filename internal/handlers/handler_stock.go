package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
	"github.com/jainutkarshh/StockFlow-ERP/internal/middleware"
)

// stockHandler handles stock movement recording and history reads.
type stockHandler struct {
	stockService portssvc.StockService
}

func newStockHandler(ss portssvc.StockService) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers stock movement routes and the per-product
// history route.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockService) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("/in", h.recordStockIn)
		stock.POST("/out", h.recordStockOut)
	}
	rg.GET("/products/:productID/history", h.stockHistory)
}

func (h *stockHandler) recordStockIn(c *gin.Context) {
	h.recordMovement(c, h.stockService.RecordStockIn)
}

func (h *stockHandler) recordStockOut(c *gin.Context) {
	h.recordMovement(c, h.stockService.RecordStockOut)
}

type recordFunc func(ctx context.Context, userID string, req dto.RecordStockRequest) (*domain.StockTransaction, error)

func (h *stockHandler) recordMovement(c *gin.Context, record recordFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := record(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product or party not found"})
		default:
			logger.Error("Failed to record stock movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record stock movement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockTransactionResponse(txn))
}

func (h *stockHandler) stockHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	history, err := h.stockService.StockHistory(c.Request.Context(), userID, c.Param("productID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to read stock history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read stock history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockTransactionResponse(history))
}
