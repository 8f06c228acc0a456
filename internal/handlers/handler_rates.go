package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/dto"
	"github.com/mdjurovic/contract_rates_app/internal/middleware"
)

// ratesHandler handles HTTP requests related to exchange rate synchronization.
type ratesHandler struct {
	rateSyncService portssvc.RateSyncSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RateSyncSvcFacade) *ratesHandler {
	return &ratesHandler{
		rateSyncService: rs,
	}
}

// RegisterRatesRoutes registers routes related to exchange rates.
// syncLimiter guards only the endpoints that hit the upstream provider.
func RegisterRatesRoutes(rg *gin.RouterGroup, rateSyncService portssvc.RateSyncSvcFacade, syncLimiter gin.HandlerFunc) {
	h := newRatesHandler(rateSyncService)

	rates := rg.Group("/rates")
	{
		rates.POST("/load", syncLimiter, h.loadRates)
		rates.POST("/load-range", syncLimiter, h.loadRatesRange)
		rates.GET("/status", h.syncStatus)
		rates.GET("", h.listRates)
	}
}

// loadRates godoc
// @Summary Synchronize rates for a single date
// @Description Fetches the provider's rate list for the date and reconciles it against the store. The outcome (including provider failures) is always reported with HTTP 200 and a status field.
// @Tags rates
// @Produce json
// @Param date query string true "Date to synchronize (YYYY-MM-DD)"
// @Success 200 {object} dto.RateSyncResponse
// @Failure 400 {object} map[string]string "Invalid or missing date"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /rates/load [post]
func (h *ratesHandler) loadRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoadRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for LoadRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date := parseDate(req.Date)
	logger.Info("Received request to synchronize rates", slog.String("date", req.Date))

	result := h.rateSyncService.SyncRates(c.Request.Context(), date, nil)
	c.JSON(http.StatusOK, dto.ToRateSyncResponse(result))
}

// loadRatesRange godoc
// @Summary Synchronize rates for an inclusive date range
// @Description Fetches and reconciles the provider's rate list for every date from start to end inclusive, in ascending order. A provider failure aborts the run; dates already processed stay committed.
// @Tags rates
// @Produce json
// @Param start query string true "First date of the range (YYYY-MM-DD)"
// @Param end query string true "Last date of the range (YYYY-MM-DD)"
// @Success 200 {object} dto.RateSyncResponse
// @Failure 400 {object} map[string]string "Invalid parameters or end before start"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /rates/load-range [post]
func (h *ratesHandler) loadRatesRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoadRatesRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for LoadRatesRange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	start := parseDate(req.Start)
	end := parseDate(req.End)
	if end.Before(start) {
		logger.Warn("Rejected range with end before start", slog.String("start", req.Start), slog.String("end", req.End))
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	logger.Info("Received request to synchronize rate range", slog.String("start", req.Start), slog.String("end", req.End))

	result := h.rateSyncService.SyncRates(c.Request.Context(), start, &end)
	c.JSON(http.StatusOK, dto.ToRateSyncResponse(result))
}

// syncStatus godoc
// @Summary Check whether today's rates are stored
// @Description Reports whether any exchange rate row exists for the current calendar day.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 500 {object} map[string]string "Failed to check rate status"
// @Router /rates/status [get]
func (h *ratesHandler) syncStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.rateSyncService.StatusForToday(c.Request.Context())
	if err != nil {
		logger.Error("Failed to check today's rate status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncStatusResponse(status))
}

// listRates godoc
// @Summary List stored exchange rates
// @Description Retrieves stored rates, optionally filtered by source currency and an inclusive date window.
// @Tags rates
// @Produce json
// @Param currency query string false "Source currency code (3 letters)"
// @Param from query string false "First date of the window (YYYY-MM-DD)"
// @Param to query string false "Last date of the window (YYYY-MM-DD)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *ratesHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var currency *string
	if req.Currency != "" {
		currency = &req.Currency
	}
	var from, to *time.Time
	if req.From != "" {
		f := parseDate(req.From)
		from = &f
	}
	if req.To != "" {
		t := parseDate(req.To)
		to = &t
	}

	rates, err := h.rateSyncService.ListRates(c.Request.Context(), currency, from, to)
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
