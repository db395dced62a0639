package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountNumber(t *testing.T) {
	v := NewValidator()

	type payload struct {
		AccountNumber string `json:"accountNumber" validate:"account_number"`
	}

	tests := []struct {
		name          string
		accountNumber string
		wantErr       bool
	}{
		{"simple digits", "12345", false},
		{"with dashes", "0001-1001", false},
		{"empty", "", true},
		{"letters", "abc123", true},
		{"too long", "123456789012345678901", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.GetValidate().Struct(payload{AccountNumber: tt.accountNumber})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAccountStatus(t *testing.T) {
	v := NewValidator()

	type payload struct {
		AccountStatus string `json:"accountStatus" validate:"account_status"`
	}

	assert.NoError(t, v.GetValidate().Struct(payload{AccountStatus: "Active"}))
	assert.NoError(t, v.GetValidate().Struct(payload{AccountStatus: "InActive"}))
	assert.Error(t, v.GetValidate().Struct(payload{AccountStatus: "closed"}))
}

func TestGetValidator_Singleton(t *testing.T) {
	first := GetValidator()
	second := GetValidator()
	assert.Same(t, first, second)
}
