package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuan-noorazman/jobly/auth"
	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/user"
)

// AuthHandler handles token issuing and registration.
type AuthHandler struct {
	userStore user.Store
	issuer    *auth.Issuer
	logger    logger.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(userStore user.Store, issuer *auth.Issuer, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		userStore: userStore,
		issuer:    issuer,
		logger:    log,
	}
}

// TokenRequest represents a login request.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// TokenResponse carries a signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Token exchanges a username and password for a token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := h.userStore.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to authenticate user", err, map[string]interface{}{
			"username": req.Username,
		})
		return
	}

	h.issue(w, r, u, http.StatusOK)
}

// Register creates a regular account and returns a token for it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	newUser := &user.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := newUser.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := newUser.SetPassword(req.Password); err != nil {
		if errors.Is(err, user.ErrPasswordTooShort) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to set password", err, nil)
		return
	}

	if err := h.userStore.Create(r.Context(), newUser); err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to create user", err, map[string]interface{}{
			"username": req.Username,
		})
		return
	}

	h.logger.Info(r.Context(), "user registered", map[string]interface{}{
		"username": newUser.Username,
	})

	h.issue(w, r, newUser, http.StatusCreated)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, u *user.User, status int) {
	token, err := h.issuer.Create(u)
	if err != nil {
		respondInternalError(w, r, h.logger, "failed to issue token", err, map[string]interface{}{
			"username": u.Username,
		})
		return
	}
	respondJSON(w, status, TokenResponse{Token: token})
}
