package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Incomplete registration data is the caller's fault and must come back as a
// 400 with the missing-fields code, not as a server error.
func TestRegisterUserIncompletePayloadIs400(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth", RegisterUser)

	req := httptest.NewRequest("POST", "/api/auth",
		strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_FIELDS", body["code"])
}

// Logout without Redis configured still reports success; blacklisting is a
// no-op in dev mode.
func TestLogoutUserWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/logout", LogoutUser)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
}
