package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/models"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/repositories"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAccountNumber = errors.New("invalid account number")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewAccountService creates an account lookup service
func NewAccountService(accountRepo repositories.AccountRepositoryInterface, logger *slog.Logger) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetAccountByAccountNumber resolves one account into its view-model
func (s *accountService) GetAccountByAccountNumber(accountNumber string) (*dto.AccountDetail, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if !models.ValidateAccountNumber(accountNumber) {
		return nil, ErrInvalidAccountNumber
	}

	account, err := s.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.Info("account lookup missed", "account_number", accountNumber)
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	return account.ToDetail(), nil
}

// ListAccounts returns a page of account views
func (s *accountService) ListAccounts(page, pageSize int) (*dto.ListAccountsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	accounts, total, err := s.accountRepo.GetAll(offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	views := make([]dto.AccountDetail, 0, len(accounts))
	for i := range accounts {
		views = append(views, *accounts[i].ToDetail())
	}

	return &dto.ListAccountsResponse{
		Accounts: views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
