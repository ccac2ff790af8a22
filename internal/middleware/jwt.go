package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lumina-lms/lumina-api/internal/token"
	"github.com/lumina-lms/lumina-api/internal/utils"
)

// JWTProtected returns a middleware that validates bearer access tokens and
// binds the authenticated user id into the request. Only the identity is
// taken from the token; roles are resolved from the store by the services.
func JWTProtected(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		userID, err := codec.Decode(tokenString, token.Access)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", userID)

		return c.Next()
	}
}

// CurrentUserID extracts the authenticated user id bound by JWTProtected.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("user_id").(uint)
	if !ok || userID == 0 {
		return 0, false
	}

	return userID, true
}
