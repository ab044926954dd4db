// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Category and user names must be a capitalized single word.
var nameRegex = regexp.MustCompile(`^[A-Z][a-z]+$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("capitalized_name", validateCapitalizedName)
		_ = v.RegisterValidation("polarity", validatePolarity)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("role", validateRole)
	}
}

func validateCapitalizedName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func validatePolarity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DAILY", "WEEKLY", "MONTHLY":
		return true
	}
	return false
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "user", "admin":
		return true
	}
	return false
}
