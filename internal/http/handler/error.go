package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"advocates/internal/http/middleware"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusCodes maps statuses the global handler may see to stable codes and safe messages.
var statusCodes = map[int]errorEnvelope{
	fiber.StatusBadRequest:         {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:           {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:   {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestTimeout:     {Code: "REQUEST_TIMEOUT", Message: "request timeout"},
	fiber.StatusServiceUnavailable: {Code: "SERVICE_UNAVAILABLE", Message: "dependency unavailable"},
}

func requestIDFromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}

// writeError writes the error envelope. message must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// ErrorHandler returns the Fiber global error handler. Unknown statuses and non-fiber
// errors become 500 INTERNAL_ERROR; internal error text never reaches the client.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		if env, ok := statusCodes[status]; ok {
			return writeError(c, status, env.Code, env.Message)
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
