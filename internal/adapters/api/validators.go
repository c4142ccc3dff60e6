package api

import (
	"log/slog"
	"sync"

	"cityweather.app/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding tags used by the query structs.
// It must run before the first request is bound.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
			slog.Warn("Failed to register notblank validator", "error", err)
		}
	})
}

// validateNotBlank rejects values made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return validation.IsNotEmpty(fl.Field().String())
}
