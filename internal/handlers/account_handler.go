package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/errors"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService   services.AccountServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, metricsCollector services.MetricsRecorderInterface) *AccountHandler {
	return &AccountHandler{
		accountService:   accountService,
		metricsCollector: metricsCollector,
	}
}

// GetAccountByAccountNumber looks up one account by its account number.
//
// A miss is not an error here. The endpoint answers 200 either way and the
// envelope's statusCode carries the discriminator: 200 with the account view
// in result, or 204 with an explanatory string in result.
//
// @Summary Get account by account number
// @Description Look up an account by its account number. Always answers 200; the envelope statusCode is 204 when no account matches.
// @Tags Accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} dto.Envelope "Envelope with account view or no-content marker"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Invalid account number"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/Accounts/GetAccountByAccountNumber/{accountNumber} [get]
func (h *AccountHandler) GetAccountByAccountNumber(c echo.Context) error {
	start := time.Now()
	accountNumber := c.Param("accountNumber")

	req := dto.LookupRequest{AccountNumber: accountNumber}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.GetAccountByAccountNumber(accountNumber)
	if err != nil {
		if err == services.ErrAccountNotFound {
			envelope, envErr := dto.NewNoContentEnvelope(
				fmt.Sprintf("no Account exists with accountnumber %s", accountNumber))
			if envErr != nil {
				return SendSystemError(c, envErr)
			}
			h.metricsCollector.RecordLookup(services.LookupOutcomeNoContent, time.Since(start))
			return c.JSON(http.StatusOK, envelope)
		}
		if err == services.ErrInvalidAccountNumber {
			h.metricsCollector.RecordLookup(services.LookupOutcomeError, time.Since(start))
			return SendError(c, errors.AccountInvalidNumber, errors.WithDetails(err.Error()))
		}
		h.metricsCollector.RecordLookup(services.LookupOutcomeError, time.Since(start))
		return SendSystemError(c, err)
	}

	envelope, err := dto.NewAccountEnvelope(account)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metricsCollector.RecordLookup(services.LookupOutcomeFound, time.Since(start))
	return c.JSON(http.StatusOK, envelope)
}

// ListAccounts returns a paginated list of account views
// @Summary List accounts
// @Description Retrieve a paginated list of accounts
// @Tags Accounts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.ListAccountsResponse "Page of accounts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/Accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	var req dto.ListAccountsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	resp, err := h.accountService.ListAccounts(req.Page, req.PageSize)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
