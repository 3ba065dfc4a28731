package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechCreateThenGet(t *testing.T) {
	e, _ := newServer(t)
	token := bearerToken(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"React"}`, token)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Tech stack created successfully", resp.Message)

	code, resp = doJSON(t, e, http.MethodGet, "/api/v1/tech/1", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Tech stack fetched successfully", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "React", data["name"])
}

func TestTechDuplicateName(t *testing.T) {
	e, _ := newServer(t)
	token := bearerToken(t)

	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"Go"}`, token)
	require.Equal(t, http.StatusCreated, code)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"Go"}`, token)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, resp.Success)

	// Only one record exists for the name.
	code, resp = doJSON(t, e, http.MethodGet, "/api/v1/tech", "", "")
	require.Equal(t, http.StatusOK, code)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestTechGetAll(t *testing.T) {
	e, _ := newServer(t)
	token := bearerToken(t)
	for _, name := range []string{"Go", "TypeScript", "Postgres"} {
		doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"`+name+`"}`, token)
	}

	code, resp := doJSON(t, e, http.MethodGet, "/api/v1/tech", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Tech stacks fetched successfully", resp.Message)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 3)
}

func TestTechDelete(t *testing.T) {
	e, _ := newServer(t)
	token := bearerToken(t)
	doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"Svelte"}`, token)

	code, resp := doJSON(t, e, http.MethodDelete, "/api/v1/tech/1", "", token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Tech stack deleted successfully", resp.Message)

	// The deleted record is returned.
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Svelte", data["name"])

	// And a subsequent fetch is a 404.
	code, resp = doJSON(t, e, http.MethodGet, "/api/v1/tech/1", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Tech stack not found", resp.Message)
}

func TestTechDeleteMissing(t *testing.T) {
	e, _ := newServer(t)

	code, resp := doJSON(t, e, http.MethodDelete, "/api/v1/tech/99", "", bearerToken(t))
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Tech stack not found", resp.Message)
}

func TestTechCreateRequiresToken(t *testing.T) {
	e, f := newServer(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/tech", `{"name":"React"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, resp.Success)
	// The gate rejected the request before any business logic ran.
	assert.Empty(t, f.techs.items)
}

func TestTechInvalidID(t *testing.T) {
	e, _ := newServer(t)

	code, resp := doJSON(t, e, http.MethodGet, "/api/v1/tech/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation Error", resp.Message)
}

func TestTechValidation(t *testing.T) {
	e, _ := newServer(t)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/tech", `{}`, bearerToken(t))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation Error", resp.Message)
	fields, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "name")
}
