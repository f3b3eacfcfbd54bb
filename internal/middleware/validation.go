package middleware

import (
	"mathdrill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam rejects requests whose :id path parameter is not a ULID
func (vm *ValidationMiddleware) ValidateIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateID("id", c.Params("id")); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		return c.Next()
	}
}

// ValidateTopicQuery validates the optional topicId query filter
func (vm *ValidationMiddleware) ValidateTopicQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID := c.Query("topicId")
		if topicID == "" {
			return c.Next()
		}
		if errs := vm.validator.ValidateID("topicId", topicID); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}
