package repositories

import (
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mock_repositories.go -package=repository_mocks

// AccountRepositoryInterface defines data access for accounts
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	GetAll(offset, limit int) ([]models.Account, int64, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines data access for account holders
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
