package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// RegisterValidations installs the custom binding validations on gin's
// validator engine. Must be called once before routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
}

// parseDate parses a query date already validated by the datefmt binding.
func parseDate(value string) time.Time {
	t, _ := time.Parse(dateLayout, value)
	return t
}
