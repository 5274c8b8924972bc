package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const maxErrorDetail = 120

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "validation failed"
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, fmt.Sprintf("field %s failed on %s", fieldError.Field(), fieldError.Tag()))
	}
	return "validation failed: " + strings.Join(details, "; ")
}

// storeErrorMessage truncates store failures so responses never leak long
// driver output or stack traces.
func storeErrorMessage(err error) string {
	message := err.Error()
	if len(message) > maxErrorDetail {
		message = message[:maxErrorDetail]
	}
	return message
}
