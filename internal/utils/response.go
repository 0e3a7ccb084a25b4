package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/types"
	"go.uber.org/zap"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// CreatedResponse sends a 201 with the stored entity
func CreatedResponse(c *fiber.Ctx, data interface{}) error {
	return SuccessResponse(c, data, fiber.StatusCreated)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ServiceErrorResponse maps err to its status and envelope.
// Causes of 5xx errors are logged, never sent.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	var se *types.ServiceError
	if errors.As(err, &se) {
		if se.Code >= fiber.StatusInternalServerError {
			zap.L().Error(se.Message,
				zap.String("url", c.OriginalURL()),
				zap.String("type", se.Type),
				zap.Error(se.Err),
			)
		}
		return ErrorResponse(c, se.Message, se.Code, se.Type)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ErrorResponse(c, fe.Message, fe.Code, "unknown")
	}

	zap.L().Error("unhandled error", zap.String("url", c.OriginalURL()), zap.Error(err))
	return ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, "unknown")
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}
