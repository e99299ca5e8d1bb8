package controllers_test

import (
	"testing"
	"time"

	"pds-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signup(t *testing.T, app *fiber.App, email string) {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/signup", fiber.Map{
		"name":         "Asha",
		"surname":      "Patil",
		"phone_number": "9876543210",
		"email":        email,
		"password":     "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, "User registered successfully", decodeMap(t, resp)["message"])
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/signup", fiber.Map{
		"name":  "Asha",
		"email": "asha@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required", decodeMap(t, resp)["error"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)

	signup(t, app, "asha@example.com")

	resp := doRequest(t, app, fiber.MethodPost, "/signup", fiber.Map{
		"name":         "Asha",
		"surname":      "Patil",
		"phone_number": "9876543210",
		"email":        "asha@example.com",
		"password":     "secret123",
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSigninIssuesToken(t *testing.T) {
	app, _ := setupApp(t)

	signup(t, app, "asha@example.com")

	resp := doRequest(t, app, fiber.MethodPost, "/signin", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Login successful", body["message"])

	tokenString, _ := body["token"].(string)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "asha@example.com", claims["email"])

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 10)
}

func TestSigninNeverReturnsPasswordHash(t *testing.T) {
	app, _ := setupApp(t)

	signup(t, app, "asha@example.com")

	resp := doRequest(t, app, fiber.MethodPost, "/signin", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user, ok := decodeMap(t, resp)["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Asha", user["name"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	app, _ := setupApp(t)

	signup(t, app, "asha@example.com")

	resp := doRequest(t, app, fiber.MethodPost, "/signin", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", decodeMap(t, resp)["error"])
}

func TestSigninUnknownEmailUsesSameMessage(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/signin", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", decodeMap(t, resp)["error"])
}
