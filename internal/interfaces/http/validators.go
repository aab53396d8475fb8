package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/j-kappa/ticketing-system/internal/domain/ticket/valueobjects"
)

// registerEnumValidators teaches the binding layer the closed enum values so
// invalid input is rejected before it reaches a use case.
func registerEnumValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return vo.Status(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("ticketcategory", func(fl validator.FieldLevel) bool {
		return vo.Category(fl.Field().String()).IsValid()
	})
}
