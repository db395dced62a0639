package dto

import (
	"github.com/shopspring/decimal"
)

// Account status values as rendered in the view. The InActive spelling is
// part of the wire contract.
const (
	AccountStatusActive   = "Active"
	AccountStatusInActive = "InActive"
)

// DefaultAvatarPath is the placeholder asset shown while no account is loaded
const DefaultAvatarPath = "assets/images/no-user.png"

// AccountDetail is the account view-model: the in-memory representation of
// one bank account as shown in the UI, distinct from the persisted entity.
type AccountDetail struct {
	AccountID      string          `json:"accountId"`
	AccountNumber  string          `json:"accountNumber"`
	AccountTitle   string          `json:"accountTitle"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AccountStatus  string          `json:"accountStatus"`
	UserImageURL   string          `json:"userImageUrl"`
}

// NewEmptyAccountDetail returns the empty view-model shape: blank fields,
// zero balance, and the placeholder avatar. UserImageURL is never empty.
func NewEmptyAccountDetail() AccountDetail {
	return AccountDetail{
		CurrentBalance: decimal.Zero,
		UserImageURL:   DefaultAvatarPath,
	}
}

// IsEmpty reports whether the view-model still holds the empty shape
func (a *AccountDetail) IsEmpty() bool {
	return a.AccountID == "" && a.AccountNumber == "" && a.AccountTitle == ""
}

// LookupRequest carries the user-entered account number for validation
// before the outbound lookup is issued
type LookupRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,max=20"`
}

// ListAccountsRequest carries pagination parameters for the account list
type ListAccountsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ListAccountsResponse represents a paginated list of account views
type ListAccountsResponse struct {
	Accounts []AccountDetail `json:"accounts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
