package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/auth"
	"github.com/rollcall-hq/rollcall-backend-go/internal/handler/http/response"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/jwt"
)

type AuthHandler struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, &result)
	response.Created(w, "Registration successful", result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, &result)
	response.SuccessWithMessage(w, "Login successful", result)
}

// Refresh exchanges the refresh-token cookie for a fresh access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	expired := h.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out", nil)
}

// Options serves the registration form vocabularies. Public: the form is
// rendered before any credentials exist.
func (h *AuthHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.authService.RegistrationOptions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, opts)
}

// setRefreshCookie moves the refresh token out of the JSON body and into
// an HttpOnly cookie.
func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, result *auth.AuthResponse) {
	if result.RefreshToken == "" {
		return
	}
	expiresAt := time.Now().Unix() + result.RefreshTokenExpiresIn
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, expiresAt))
	result.RefreshToken = ""
	result.RefreshTokenExpiresIn = 0
}
