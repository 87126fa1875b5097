package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// The custom binding tags are registered here so every importer of the DTOs
// gets them, test binaries included.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("documenttype", func(fl validator.FieldLevel) bool {
		return domain.DocumentType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("documentstatus", func(fl validator.FieldLevel) bool {
		return domain.DocumentStatus(fl.Field().String()).IsValid()
	})
}
