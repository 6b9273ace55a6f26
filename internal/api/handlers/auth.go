package handlers

import (
	"net/http"
	"time"

	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/auth"
	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/services"
)

type AuthHandler struct {
	TM    *auth.TokenManager
	Users *services.UserService
}

func NewAuthHandler(tm *auth.TokenManager, users *services.UserService) *AuthHandler {
	return &AuthHandler{TM: tm, Users: users}
}

type authResp struct {
	Message      string      `json:"message"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

func (h *AuthHandler) issue(w http.ResponseWriter, status int, msg string, u models.User) {
	access, refresh, _, err := h.TM.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	httpx.WriteJSON(w, status, authResp{
		Message:      msg,
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := decode(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.Users.Register(r.Context(), in)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	h.issue(w, http.StatusCreated, "User registered successfully", u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	h.issue(w, http.StatusOK, "Login successful", u)
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds until the access token expires
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decode(r, &req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	claims, isRefresh, err := h.TM.ParseAny(req.RefreshToken)
	if err != nil || !isRefresh {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	access, refresh, exp, err := h.TM.GeneratePair(claims.UserID, claims.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(exp).Seconds()),
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	u, err := h.Users.Get(r.Context(), c.ID)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var in services.ProfileUpdate
	if err := decode(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.Users.UpdateProfile(r.Context(), c.ID, in)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Users.ChangePassword(r.Context(), c.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	u, err := h.Users.Get(r.Context(), c.ID)
	if err != nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{"valid": false, "message": "Invalid token"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"valid": true, "user": u})
}
