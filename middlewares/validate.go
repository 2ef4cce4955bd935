package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindQueryAndValidate parses query parameters into dst and validates it.
// Returns fiber.ErrBadRequest for parse errors and validator.ValidationErrors
// for validation issues; both are handled by the central ErrorHandler.
func BindQueryAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	return validate.Struct(dst)
}

// ValidateStruct validates any struct value using the shared validator instance.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
