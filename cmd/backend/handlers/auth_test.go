package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Token(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("works", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/auth/token", map[string]string{
			"username": "u2",
			"password": "password-u2",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body TokenResponse
		decodeBody(t, rec, &body)
		claims, err := env.issuer.Parse(body.Token)
		require.NoError(t, err)
		assert.Equal(t, "u2", claims.Username)
		assert.True(t, claims.IsAdmin)
	})

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "unauth with non-existent user",
			body:       map[string]string{"username": "no-such-user", "password": "password-u1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unauth with wrong password",
			body:       map[string]string{"username": "u1", "password": "nope-nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bad request with missing data",
			body:       map[string]string{"username": "u1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad request with invalid data",
			body:       map[string]interface{}{"username": 42, "password": "above-is-a-number"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/auth/token", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	valid := map[string]interface{}{
		"username":  "new",
		"firstName": "first",
		"lastName":  "last",
		"password":  "password",
		"email":     "new@email.com",
	}

	t.Run("works for anon and never grants admin", func(t *testing.T) {
		env := setupTestEnv(t)
		rec := env.do(t, http.MethodPost, "/auth/register", valid, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var body TokenResponse
		decodeBody(t, rec, &body)
		claims, err := env.issuer.Parse(body.Token)
		require.NoError(t, err)
		assert.Equal(t, "new", claims.Username)
		assert.False(t, claims.IsAdmin)

		login := env.do(t, http.MethodPost, "/auth/token", map[string]string{
			"username": "new",
			"password": "password",
		}, "")
		assert.Equal(t, http.StatusOK, login.Code)
	})

	with := func(key string, value interface{}) map[string]interface{} {
		out := make(map[string]interface{}, len(valid)+1)
		for k, v := range valid {
			out[k] = v
		}
		out[key] = value
		return out
	}

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "admin flag is rejected", body: with("isAdmin", true)},
		{name: "missing fields", body: map[string]interface{}{"username": "new"}},
		{name: "bad email", body: with("email", "not-an-email")},
		{name: "short password", body: with("password", "four")},
		{name: "duplicate username", body: with("username", "u1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			rec := env.do(t, http.MethodPost, "/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
