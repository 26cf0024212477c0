package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/service"
)

// AuthHandler manages registration, login/logout, and the current-user
// endpoints.
//
// HANDLER RESPONSIBILITIES:
//   - HandleRegister     → create an account and start a session
//   - HandleLogin        → verify credentials and start a session
//   - HandleLogout       → clear the session cookie
//   - HandleMe           → return the logged-in user's profile
//   - HandleUpdateSkills → replace the logged-in user's skill list
//
// The handler owns only HTTP concerns: decoding bodies, setting the JWT
// cookie, status codes. Credential checks and validation live in the
// ProfileService.
type AuthHandler struct {
	profiles *service.ProfileService
	tokens   *auth.TokenService
	logger   *slog.Logger
}

// NewAuthHandler creates an AuthHandler. All dependencies are injected here;
// the handler has no knowledge of how they're constructed.
func NewAuthHandler(profiles *service.ProfileService, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		profiles: profiles,
		tokens:   tokens,
		logger:   logger,
	}
}

// registerRequest is the body for POST /api/auth/register.
type registerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Skills   []string `json:"skills"`
}

// loginRequest is the body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// skillsRequest is the body for PUT /api/me/skills. The list replaces the
// stored skills wholesale; sending [] clears the profile.
type skillsRequest struct {
	Skills []string `json:"skills"`
}

// HandleRegister creates a new account and logs the user straight in.
//
// HTTP: POST /api/auth/register
// BODY: {"name":"...", "email":"...", "password":"...", "skills":["..."]}
//
// A duplicate email returns 409 so the signup form can tell the user to log
// in instead. On success the response carries the user plus a session cookie,
// matching the login response — the client treats both identically.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("register: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	user, err := h.profiles.Register(r.Context(), req.Name, req.Email, req.Password, req.Skills)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin verifies credentials and starts a session.
//
// HTTP: POST /api/auth/login
// BODY: {"email":"...", "password":"..."}
//
// Both failure modes (unknown email, wrong password) come back as the same
// 401 with the same message — the service guarantees that, we just forward it.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("login: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	user, err := h.profiles.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleLogout clears the session cookie.
//
// HTTP: POST /api/auth/logout
//
// POST rather than GET: logout is state-changing, and GET would be
// vulnerable to CSRF and browser pre-fetching. Being stateless (JWT),
// "logout" just means deleting the client-side cookie; the token stays
// technically valid until expiry, but the browser can no longer send it.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // delete the cookie immediately
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// HandleMe returns the currently authenticated user's profile.
//
// HTTP: GET /api/me
// Auth: required (RequireAuth middleware sets userID in context)
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Should never happen on a RequireAuth-protected route, but be safe.
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	user, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		h.logger.Error("me: profile lookup failed", slog.String("userID", userID))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleUpdateSkills replaces the logged-in user's skill list.
//
// HTTP: PUT /api/me/skills
// BODY: {"skills":["JavaScript","React"]}
// Auth: required
//
// PUT semantics: the submitted list is the new truth, not a delta. The
// response is the updated profile so the client can refresh its state
// without a second request.
func (h *AuthHandler) HandleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	var req skillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("update skills: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	user, err := h.profiles.UpdateSkills(r.Context(), userID, req.Skills)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// startSession issues a JWT and sets it as the session cookie.
//
// HttpOnly: JavaScript cannot read the cookie (XSS protection).
// SameSite=Lax: sent on top-level navigations, not cross-site POSTs.
// Secure should be true in production (HTTPS only); left false for local dev.
func (h *AuthHandler) startSession(w http.ResponseWriter, userID string) error {
	tokenStr, err := h.tokens.Generate(userID)
	if err != nil {
		h.logger.Error("session token generation failed",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure: true, // uncomment in production (requires HTTPS)
	})
	return nil
}
