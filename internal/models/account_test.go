package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
)

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid active account",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "12345",
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(1000.50),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: false,
		},
		{
			name: "valid inactive account",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "0001-1001",
				AccountTitle:   "Dormant Holder",
				CurrentBalance: decimal.Zero,
				AccountStatus:  AccountStatusInActive,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			account: Account{
				AccountNumber:  "12345",
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(100.00),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "missing account number",
			account: Account{
				UserID:         validUserID,
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(100.00),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: true,
			errMsg:  "account number is required",
		},
		{
			name: "account number too long",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "123456789012345678901",
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(100.00),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: true,
			errMsg:  "account number exceeds maximum length",
		},
		{
			name: "missing account title",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "12345",
				CurrentBalance: decimal.NewFromFloat(100.00),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: true,
			errMsg:  "account title is required",
		},
		{
			name: "invalid status",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "12345",
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(100.00),
				AccountStatus:  "frozen",
			},
			wantErr: true,
			errMsg:  "invalid account status",
		},
		{
			name: "negative balance",
			account: Account{
				UserID:         validUserID,
				AccountNumber:  "12345",
				AccountTitle:   "John Doe",
				CurrentBalance: decimal.NewFromFloat(-0.01),
				AccountStatus:  AccountStatusActive,
			},
			wantErr: true,
			errMsg:  "balance cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_StatusTransitions(t *testing.T) {
	account := Account{
		UserID:         uuid.New(),
		AccountNumber:  "12345",
		AccountTitle:   "John Doe",
		CurrentBalance: decimal.NewFromFloat(1000.50),
		AccountStatus:  AccountStatusActive,
	}

	assert.True(t, account.IsActive())

	account.Deactivate()
	assert.False(t, account.IsActive())
	assert.Equal(t, AccountStatusInActive, account.AccountStatus)

	account.Activate()
	assert.True(t, account.IsActive())
}

func TestAccount_ToDetail(t *testing.T) {
	accountID := uuid.New()

	t.Run("maps all fields", func(t *testing.T) {
		account := Account{
			ID:             accountID,
			UserID:         uuid.New(),
			AccountNumber:  "12345",
			AccountTitle:   "John Doe",
			CurrentBalance: decimal.NewFromFloat(1000.50),
			AccountStatus:  AccountStatusActive,
			User: User{
				ProfilePicURL: "https://cdn.example.com/avatars/jdoe.png",
			},
		}

		detail := account.ToDetail()
		assert.Equal(t, accountID.String(), detail.AccountID)
		assert.Equal(t, "12345", detail.AccountNumber)
		assert.Equal(t, "John Doe", detail.AccountTitle)
		assert.True(t, detail.CurrentBalance.Equal(decimal.NewFromFloat(1000.50)))
		assert.Equal(t, AccountStatusActive, detail.AccountStatus)
		assert.Equal(t, "https://cdn.example.com/avatars/jdoe.png", detail.UserImageURL)
	})

	t.Run("falls back to placeholder avatar", func(t *testing.T) {
		account := Account{
			ID:             accountID,
			UserID:         uuid.New(),
			AccountNumber:  "12345",
			AccountTitle:   "John Doe",
			CurrentBalance: decimal.NewFromFloat(1000.50),
			AccountStatus:  AccountStatusActive,
		}

		detail := account.ToDetail()
		assert.Equal(t, dto.DefaultAvatarPath, detail.UserImageURL)
		assert.NotEmpty(t, detail.UserImageURL)
	})
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		name          string
		accountNumber string
		want          bool
	}{
		{"plain digits", "12345", true},
		{"dashed format", "0001-1001", true},
		{"empty", "", false},
		{"too long", "123456789012345678901", false},
		{"letters rejected", "12a45", false},
		{"whitespace rejected", "12 45", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccountNumber(tt.accountNumber))
		})
	}
}
