package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samurun/portfolio-api/internal/auth"
)

func TestSignup(t *testing.T) {
	e, f := newServer(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"John Doe","email":"john@example.com","password":"password123"}`, "")

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, resp.Success)
	assert.Equal(t, "User created successfully", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "John Doe", data["name"])
	assert.Equal(t, "john@example.com", data["email"])
	// The stored password is a hash, never the plaintext.
	assert.NotContains(t, data, "password")
	assert.NotEqual(t, "password123", f.users.users[0].Password)
}

func TestSignupEmailTaken(t *testing.T) {
	e, _ := newServer(t)
	body := `{"name":"John","email":"john@example.com","password":"password123"}`

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, code)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already in use", resp.Message)
}

func TestSignupValidation(t *testing.T) {
	e, _ := newServer(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"email":"not-an-email","password":"abc"}`, "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation Error", resp.Message)

	fields, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLogin(t *testing.T) {
	e, _ := newServer(t)
	_, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"John","email":"john@example.com","password":"password123"}`, "")

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"password123"}`, "")

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)

	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	e, _ := newServer(t)
	_, _ = doJSON(t, e, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"John","email":"john@example.com","password":"password123"}`, "")

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"wrong-password"}`, "")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	e, _ := newServer(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`, "")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp.Message)
}
