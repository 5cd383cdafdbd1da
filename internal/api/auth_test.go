package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beldyconnect/backend/internal/types"
)

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	req := types.RegisterRequest{
		FirstName: "Yassine",
		LastName:  "Berrada",
		Username:  "yassine",
		Email:     "yassine@um6p.ma",
		Phone:     "0611111111",
		Password:  "supersecret",
	}

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", req, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	// Registering the same email again conflicts
	req.Username = "yassine2"
	w = performRequest(env.router, http.MethodPost, "/api/v1/auth/register", req, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := setupTestEnv(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
		FirstName: "Yassine",
		Email:     "not-an-email",
		Password:  "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{
		FirstName: "Imane",
		LastName:  "Alaoui",
		Username:  "imane",
		Email:     "imane@um6p.ma",
		Phone:     "0622222222",
		Password:  "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(env.router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
		Email:    "imane@um6p.ma",
		Password: "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = performRequest(env.router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
		Email:    "imane@um6p.ma",
		Password: "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(env.router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{
		Email:    "nobody@um6p.ma",
		Password: "supersecret",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
