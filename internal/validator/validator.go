// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fintrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tx_category", validateTransactionCategory)
		_ = v.RegisterValidation("filter_category", validateFilterCategory)
		_ = v.RegisterValidation("username", validateUsername)
	}
}

// validateTransactionCategory accepts the four closed transaction categories,
// after the same normalization the service applies.
func validateTransactionCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseCategory(fl.Field().String())
	return ok
}

// validateFilterCategory additionally accepts the "all" sentinel used by
// list and report filters.
func validateFilterCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseFilterCategory(fl.Field().String())
	return ok
}

// validateUsername rejects usernames that are empty after trimming or that
// contain path-breaking characters.
func validateUsername(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch r {
		case '/', '\\', ' ', '\t', '\n':
			return false
		}
	}
	return true
}
