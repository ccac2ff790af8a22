package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-lms/lumina-api/internal/middleware"
	"github.com/lumina-lms/lumina-api/internal/utils"
)

// requesterID extracts the authenticated user id or writes a 401 response.
// The boolean reports whether the handler may proceed.
func requesterID(c *fiber.Ctx) (uint, bool, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return 0, false, utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	return userID, true, nil
}
