package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"eduport/gateway"
)

// SuccessResponse wraps every successful JSON reply.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse wraps every failed JSON reply. Message is what the toast
// shows.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{Success: true, Data: data})
}

// SuccessMessage replies with data plus a toast-worthy message.
func SuccessMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{Success: true, Message: message, Data: data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ValidationError(c *fiber.Ctx, details map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: details,
	})
}

// GatewayError maps a gateway failure to a response: the taxonomy picks the
// user message, the status mirrors the upstream rejection where there was
// one.
func GatewayError(c *fiber.Ctx, err error, fallback string) error {
	status := fiber.StatusBadGateway
	if se, ok := gateway.AsStatus(err); ok {
		status = se.Code
	} else if gateway.IsTransport(err) {
		status = fiber.StatusGatewayTimeout
	}
	return Error(c, status, gateway.UserMessage(err, fallback))
}
