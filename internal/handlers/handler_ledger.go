package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
	"github.com/jainutkarshh/StockFlow-ERP/internal/middleware"
)

// ledgerHandler serves the derived balance and ledger reads.
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func newLedgerHandler(ls portssvc.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the balance and ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/balances", h.allBalances)
	rg.GET("/parties/:partyID/balance", h.partyBalance)
	rg.GET("/parties/:partyID/ledger", h.partyLedger)
}

func (h *ledgerHandler) allBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, summary, err := h.ledgerService.ComputeAllBalances(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAllBalancesResponse(balances, summary))
}

func (h *ledgerHandler) partyBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.ledgerService.ComputeBalance(c.Request.Context(), userID, c.Param("partyID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to compute balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// parseDateParam parses an optional yyyy-mm-dd query parameter.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " date, expected " + dto.DateLayout})
		return nil, false
	}
	return &t, true
}

func (h *ledgerHandler) partyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	ledger, err := h.ledgerService.ComputeLedger(c.Request.Context(), userID, c.Param("partyID"), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to compute ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
