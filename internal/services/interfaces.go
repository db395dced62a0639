package services

import (
	"time"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/mock_services.go -package=service_mocks

// AccountServiceInterface defines account lookup operations
type AccountServiceInterface interface {
	// GetAccountByAccountNumber resolves the view for one account.
	// Returns ErrAccountNotFound when no account matches; the handler turns
	// that into the no-content envelope, not an error response.
	GetAccountByAccountNumber(accountNumber string) (*dto.AccountDetail, error)

	// ListAccounts returns a page of account views
	ListAccounts(page, pageSize int) (*dto.ListAccountsResponse, error)
}

// MetricsRecorderInterface records lookup metrics
type MetricsRecorderInterface interface {
	RecordLookup(outcome string, duration time.Duration)
}

// Lookup outcome labels used by the metrics recorder
const (
	LookupOutcomeFound     = "found"
	LookupOutcomeNoContent = "no_content"
	LookupOutcomeError     = "error"
)
