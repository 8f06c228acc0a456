package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/dto"
	"github.com/mdjurovic/contract_rates_app/internal/middleware"
)

// contractHandler handles HTTP requests for contract aggregations.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

// newContractHandler creates a new contractHandler.
func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{
		contractService: cs,
	}
}

// registerContractRoutes registers routes related to contracts.
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("/by-customer/:customerID", h.contractsByCustomer)
		contracts.GET("/summary-by-customer/:customerID", h.summaryByCustomer)
	}
}

// parseCustomerID extracts and validates the customerID path parameter.
func parseCustomerID(c *gin.Context) (int64, bool) {
	customerID, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID must be a number"})
		return 0, false
	}
	return customerID, true
}

// contractsByCustomer godoc
// @Summary List a customer's contracts with summaries
// @Description Retrieves every contract of the customer with its amortization plan entries, per-contract payment summaries and the total paid across all contracts.
// @Tags contracts
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.CustomerContractsResponse
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer has no contracts"
// @Failure 500 {object} map[string]string "Failed to list contracts"
// @Router /contracts/by-customer/{customerID} [get]
func (h *contractHandler) contractsByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}

	contracts, err := h.contractService.ContractsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No contracts found for this customer"})
		} else {
			logger.Error("Failed to list contracts for customer", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contracts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerContractsResponse(contracts))
}

// summaryByCustomer godoc
// @Summary Payment summary across a customer's contracts
// @Description Computes the total paid, total due and past due amounts flattened across all of the customer's contracts. A customer with no contracts gets a zero summary.
// @Tags contracts
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.ContractSummaryResponse
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /contracts/summary-by-customer/{customerID} [get]
func (h *contractHandler) summaryByCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := parseCustomerID(c)
	if !ok {
		return
	}

	summary, err := h.contractService.SummaryByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to compute contract summary", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContractSummaryResponse(*summary))
}
