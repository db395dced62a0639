package validation

import (
	"reflect"
	"strings"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_status", validateAccountStatus)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateAccountNumber validates that an account number follows the expected format
func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.ValidateAccountNumber(fl.Field().String())
}

// validateAccountStatus validates that account status is one of the allowed values
func validateAccountStatus(fl validator.FieldLevel) bool {
	return models.IsValidAccountStatus(fl.Field().String())
}
