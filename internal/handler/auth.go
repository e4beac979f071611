package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mdupont/taskboard/internal/domain"
	"github.com/mdupont/taskboard/internal/service"
)

// AuthHandler handles signup, login, and the current-user endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup registers a new user and issues a token.
// POST /signup
// Request:  {"name":"...","email":"...","password":"...","password_confirmation":"..."}
// Response: 201 {"token":"...","user":{...}} or 422 {"errors":[...]}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []string(verrs)})
			return
		}
		slog.Error("signup user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  toUserDTO(user),
	})
}

// HandleLogin verifies credentials and issues a token. Unknown email and bad
// password get the same response body.
// POST /login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"token":"...","user":{...}} or 401 {"error":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserDTO(user),
	})
}

// HandleMe returns the currently authenticated user.
// GET /me
// Response: 200 {...} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not Authorized")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}
