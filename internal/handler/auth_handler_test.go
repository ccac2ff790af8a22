package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lms/lumina-api/internal/dto"
)

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)

	first := registerUser(t, app, "Ada", "ada@example.com", "teacher")
	require.Equal(t, "teacher", first.User.Role)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":  "No Password",
		"email": "nopass@example.com",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginVerifiesPassword(t *testing.T) {
	app, _ := setupApp(t)

	registered := registerUser(t, app, "Grace", "grace@example.com", "student")

	resp := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "grace@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "grace@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	decodeResponse(t, resp, &envelope)
	require.True(t, envelope.Success)
	require.Equal(t, registered.User.ID, envelope.Data.User.ID)

	// The issued token must map back to the same identity.
	profileResp := doJSON(t, app, "GET", "/api/auth/profile", envelope.Data.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, profileResp.StatusCode)

	var profile struct {
		Data dto.UserResponse `json:"data"`
	}
	decodeResponse(t, profileResp, &profile)
	require.Equal(t, registered.User.ID, profile.Data.ID)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/courses", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/courses", "not-a-token", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfileIsIdempotent(t *testing.T) {
	app, _ := setupApp(t)

	registered := registerUser(t, app, "Linus", "linus@example.com", "student")

	var first, second struct {
		Data dto.UserResponse `json:"data"`
	}

	resp := doJSON(t, app, "GET", "/api/auth/profile", registered.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &first)

	resp = doJSON(t, app, "GET", "/api/auth/profile", registered.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &second)

	require.Equal(t, first.Data, second.Data)
}

func TestUpdateProfilePartial(t *testing.T) {
	app, _ := setupApp(t)

	registered := registerUser(t, app, "Marie", "marie@example.com", "student")

	resp := doJSON(t, app, "PUT", "/api/auth/profile", registered.AccessToken, map[string]string{
		"bio": "I study physics",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated struct {
		Data dto.UserResponse `json:"data"`
	}
	decodeResponse(t, resp, &updated)
	require.Equal(t, "Marie", updated.Data.Name)
	require.Equal(t, "I study physics", updated.Data.Bio)

	// Bio can be explicitly cleared while the name stays untouched.
	resp = doJSON(t, app, "PUT", "/api/auth/profile", registered.AccessToken, map[string]string{
		"bio": "",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &updated)
	require.Equal(t, "Marie", updated.Data.Name)
	require.Empty(t, updated.Data.Bio)
}

func TestRefreshIssuesWorkingToken(t *testing.T) {
	app, _ := setupApp(t)

	registered := registerUser(t, app, "Alan", "alan@example.com", "teacher")

	resp := doJSON(t, app, "POST", "/api/auth/refresh", registered.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var refreshed struct {
		Data dto.TokenResponse `json:"data"`
	}
	decodeResponse(t, resp, &refreshed)
	require.NotEmpty(t, refreshed.Data.AccessToken)

	profileResp := doJSON(t, app, "GET", "/api/auth/profile", refreshed.Data.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, profileResp.StatusCode)

	var profile struct {
		Data dto.UserResponse `json:"data"`
	}
	decodeResponse(t, profileResp, &profile)
	require.Equal(t, registered.User.ID, profile.Data.ID)
}
