package middleware

import (
	"quiz-deck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which validated path parameters are stored.
const (
	LocalPoolID    = "validated_pool_id"
	LocalSessionID = "validated_session_id"
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

// ValidatePoolID checks the :poolID path parameter.
func (vm *ValidationMiddleware) ValidatePoolID() fiber.Handler {
	return vm.validateIDParam("poolID", "pool_id", LocalPoolID)
}

// ValidateSessionID checks the :sessionID path parameter.
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return vm.validateIDParam("sessionID", "session_id", LocalSessionID)
}

func (vm *ValidationMiddleware) validateIDParam(param, field, local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if errs := vm.validator.ValidateID(field, id); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		c.Locals(local, id)
		return c.Next()
	}
}
