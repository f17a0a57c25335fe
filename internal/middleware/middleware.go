package middleware

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// snapshot length for logged response bodies
const maxBodySnapshot = 80

// RequestID propagates an incoming X-Request-ID or assigns a fresh one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

// RequestLogger logs method, path, status and duration for API requests,
// with a truncated snapshot of the JSON response body. Non-API paths
// (static assets) are not logged.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if !strings.HasPrefix(c.Path(), "/api") {
			return err
		}

		logger.Info("request",
			"request_id", c.Locals("request_id"),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"response", truncate(c.Response().Body()),
		)
		return err
	}
}

func truncate(body []byte) string {
	s := string(body)
	if len(s) > maxBodySnapshot {
		return s[:maxBodySnapshot-1] + "…"
	}
	return s
}

// ErrorHandler maps any error escaping a handler to a JSON {message} body
// with the error's status code, defaulting to 500.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logger.Error("request failed",
			"request_id", c.Locals("request_id"),
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
