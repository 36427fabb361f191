package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/middleware"
)

// dashboardHandler serves aggregated dashboard reads.
type dashboardHandler struct {
	stockService portssvc.StockService
}

func newDashboardHandler(ss portssvc.StockService) *dashboardHandler {
	return &dashboardHandler{stockService: ss}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, stockService portssvc.StockService) {
	h := newDashboardHandler(stockService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/top-products", h.topProducts)
	}
}

func (h *dashboardHandler) topProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	top, err := h.stockService.TopProducts(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to read top products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read top products"})
		return
	}

	c.JSON(http.StatusOK, top)
}
