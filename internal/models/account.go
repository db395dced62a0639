package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
)

const (
	AccountStatusActive   = "Active"
	AccountStatusInActive = "InActive"

	// AccountNumberMaxLength bounds the user-entered lookup key
	AccountNumberMaxLength = 20
)

var (
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidBalance       = errors.New("balance cannot be negative")
)

// Account represents a persisted bank account
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"account_number"`
	AccountTitle   string          `gorm:"type:varchar(100);not null" json:"account_title"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	AccountStatus  string          `gorm:"type:varchar(20);not null;default:'Active'" json:"account_status"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.AccountStatus == "" {
		a.AccountStatus = AccountStatusActive
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if len(a.AccountNumber) > AccountNumberMaxLength {
		return errors.New("account number exceeds maximum length")
	}

	if a.AccountTitle == "" {
		return errors.New("account title is required")
	}

	if !IsValidAccountStatus(a.AccountStatus) {
		return ErrInvalidAccountStatus
	}

	if a.CurrentBalance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.AccountStatus == AccountStatusActive
}

// Deactivate marks the account inactive
func (a *Account) Deactivate() {
	a.AccountStatus = AccountStatusInActive
}

// Activate marks the account active
func (a *Account) Activate() {
	a.AccountStatus = AccountStatusActive
}

// ToDetail maps the persisted account onto the view-model served to clients.
// The avatar falls back to the placeholder so the view invariant (non-empty
// image URL) holds even for holders without a profile picture.
func (a *Account) ToDetail() *dto.AccountDetail {
	imageURL := a.User.ProfilePicURL
	if imageURL == "" {
		imageURL = dto.DefaultAvatarPath
	}

	return &dto.AccountDetail{
		AccountID:      a.ID.String(),
		AccountNumber:  a.AccountNumber,
		AccountTitle:   a.AccountTitle,
		CurrentBalance: a.CurrentBalance,
		AccountStatus:  a.AccountStatus,
		UserImageURL:   imageURL,
	}
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInActive:
		return true
	default:
		return false
	}
}

// ValidateAccountNumber validates a user-entered account number: non-empty
// after trimming, bounded length, digits and dashes only
func ValidateAccountNumber(accountNumber string) bool {
	if accountNumber == "" || len(accountNumber) > AccountNumberMaxLength {
		return false
	}

	for _, char := range accountNumber {
		if (char < '0' || char > '9') && char != '-' {
			return false
		}
	}

	return true
}
