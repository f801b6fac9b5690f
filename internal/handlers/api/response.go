package api

import (
	"github.com/gofiber/fiber/v3"
)

// apiResponse is the body of every API response: status "ok" with data, or
// status "error" with a message.
type apiResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(apiResponse{Status: "ok", Data: data})
}

// jsonList is jsonSuccess for slices; a nil slice is sent as [].
func jsonList[T any](c fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return jsonSuccess(c, items)
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(apiResponse{Status: "error", Error: message})
}
