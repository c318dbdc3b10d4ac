package utils

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GenerateTrackingCode returns a new unique tracking code for a dispatch
// request. Codes are uppercase and prefixed so they are easy to read out
// over the phone.
func GenerateTrackingCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "DSP-" + id[:12]
}

// ParseIDParam reads the ":id" route parameter as an unsigned integer.
func ParseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
