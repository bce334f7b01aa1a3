package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vowline/internal/entity"
	"vowline/internal/usecase"
)

type AuthHandler struct {
	authUc usecase.AuthUsecase
}

func NewAuthHandler(authUc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUc: authUc,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entity.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "email, password, and name are required")
		return
	}

	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	if req.Role != "" && req.Role != entity.UserRoleUser && req.Role != entity.UserRoleOfficiant {
		respondError(w, http.StatusBadRequest, "role must be user or officiant")
		return
	}

	authResponse, err := h.authUc.Register(r.Context(), req)
	if err != nil {
		log.Printf("Register error: %v", err)

		message := "internal server error"
		status := statusFromError(err)
		if err == usecase.ErrEmailAlreadyTaken {
			message = "email already taken"
		}

		respondError(w, status, message)
		return
	}

	respond(w, http.StatusCreated, Response{
		Message: "registration successful, please verify your email",
		Data:    authResponse,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	authResponse, err := h.authUc.Login(r.Context(), req)
	if err != nil {
		log.Printf("Login error: %v", err)

		message := "internal server error"
		switch err {
		case usecase.ErrInvalidCredentials:
			message = "invalid email or password"
		case usecase.ErrEmailNotVerified:
			message = "email is not verified"
		}

		respondError(w, statusFromError(err), message)
		return
	}

	h.setRefreshTokenCookie(w, authResponse.RefreshToken)
	authResponse.RefreshToken = ""

	respond(w, http.StatusOK, Response{
		Message: "login successful",
		Data:    authResponse,
	})
}

// GET /auth/verify?token=...
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	if err := h.authUc.VerifyEmail(r.Context(), token); err != nil {
		log.Printf("Verify email error: %v", err)
		respondError(w, http.StatusBadRequest, "invalid or expired verification token")
		return
	}

	respond(w, http.StatusOK, Response{Message: "email verified"})
}

// POST /auth/refresh
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" {
		var req entity.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		respondError(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	authResponse, err := h.authUc.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		log.Printf("Refresh token error: %v", err)

		message := "invalid or expired refresh token"
		switch err {
		case usecase.ErrExpiredRefreshToken:
			message = "refresh token has expired"
		case usecase.ErrRevokedRefreshToken:
			message = "refresh token has been revoked"
		}

		h.clearRefreshTokenCookie(w)
		respondError(w, http.StatusUnauthorized, message)
		return
	}

	h.setRefreshTokenCookie(w, authResponse.RefreshToken)
	authResponse.RefreshToken = ""

	respond(w, http.StatusOK, Response{
		Message: "token refreshed successfully",
		Data:    authResponse,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" {
		var req entity.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken != "" {
		if err := h.authUc.Logout(r.Context(), refreshToken); err != nil {
			log.Printf("Logout error: %v", err)
		}
	}

	h.clearRefreshTokenCookie(w)
	respond(w, http.StatusOK, Response{Message: "logout successful"})
}

// POST /auth/logout-all
func (h *AuthHandler) LogoutAllDevices(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authUc.LogoutAllDevices(r.Context(), claims.UserId); err != nil {
		log.Printf("Logout all devices error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.clearRefreshTokenCookie(w)
	respond(w, http.StatusOK, Response{Message: "logged out from all devices successfully"})
}

func (h *AuthHandler) setRefreshTokenCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60,
	}
	http.SetCookie(w, cookie)
}

func (h *AuthHandler) clearRefreshTokenCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	}
	http.SetCookie(w, cookie)
}
