package middleware

import (
	"time"

	"dispatch-backend/logger"
	"dispatch-backend/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger pushes one LogEntry per handled request into the async
// logger. Bodies are captured as-is; the channel write never blocks the
// response path beyond the buffer.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		entry := types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			RequestBody:  string(c.Body()),
			ResponseBody: string(c.Response().Body()),
			StatusCode:   c.Response().StatusCode(),
			CreatedAt:    time.Now(),
		}
		if principal, ok := GetPrincipal(c); ok {
			branchID := principal.BranchID
			entry.BranchID = &branchID
		}
		asyncLogger.Log(entry)

		return err
	}
}
