package api

import (
	"net/http"
	"time"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/guard"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/services"
	"osas/clubport/internal/session"
	"osas/clubport/internal/upstream"
)

// AuthHandler owns the session lifecycle endpoints: login, the two-factor
// challenge, SSO completion, refresh and logout.
type AuthHandler struct {
	sessions   *session.Manager
	api        *upstream.Client
	resolver   *guard.Resolver
	scope      *services.ScopeService
	cookieName string
	secure     bool
}

func NewAuthHandler(sessions *session.Manager, api *upstream.Client, resolver *guard.Resolver,
	scope *services.ScopeService, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		api:        api,
		resolver:   resolver,
		scope:      scope,
		cookieName: cookieName,
		secure:     secure,
	}
}

// LoginResponse is what the browser gets back from login/2FA/SSO endpoints.
type LoginResponse struct {
	RequiresVerification bool          `json:"requiresVerification,omitempty"`
	Requires2FA          bool          `json:"requires2FA,omitempty"`
	User                 *session.User `json:"user,omitempty"`
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, sess *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		CaptchaToken string `json:"captchaToken"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.api.Auth.Login(r.Context(), req.Email, req.Password, req.CaptchaToken)
	if err != nil {
		if upstream.IsStatus(err, http.StatusUnauthorized) || upstream.IsStatus(err, http.StatusBadRequest) {
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		logging.Error("login failed", "error", err.Error())
		respondWithError(w, http.StatusBadGateway, "authentication service unavailable")
		return
	}

	switch {
	case res.RequiresVerification:
		respondWithSuccess(w, http.StatusOK, &LoginResponse{RequiresVerification: true})

	case res.Requires2FA:
		sess, err := h.sessions.CreatePendingTwoFA(r.Context(), res.TempToken)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to open session")
			return
		}
		h.setCookie(w, sess)
		respondWithSuccess(w, http.StatusOK, &LoginResponse{Requires2FA: true})

	default:
		sess, err := h.sessions.Create(r.Context(), res.AccessToken, res.RefreshToken, res.Userdata)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to open session")
			return
		}
		h.setCookie(w, sess)
		respondWithSuccess(w, http.StatusOK, &LoginResponse{User: res.Userdata})
	}
}

// VerifyTwoFA handles POST /auth/2fa, completing a pending challenge.
func (h *AuthHandler) VerifyTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())
	if sess == nil || !sess.PendingTwoFA || sess.TempToken == "" {
		respondWithError(w, http.StatusUnauthorized, "no pending two-factor challenge")
		return
	}

	var req struct {
		OTP string `json:"otp"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.api.Auth.Verify2FA(r.Context(), sess.TempToken, req.OTP)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if err := h.sessions.Complete(r.Context(), sess, res.AccessToken, res.RefreshToken, res.Userdata); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to complete session")
		return
	}
	h.setCookie(w, sess)
	respondWithSuccess(w, http.StatusOK, &LoginResponse{User: res.Userdata})
}

// CompleteSSO handles POST /auth/sso. The browser posts the URL fragment the
// SSO provider redirected back with; the gateway turns it into a session.
func (h *AuthHandler) CompleteSSO(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fragment string `json:"fragment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	res := upstream.ParseSSOFragment(req.Fragment)
	if res.Error != "" {
		respondWithError(w, http.StatusUnauthorized, res.Error)
		return
	}
	if res.AccessToken == "" {
		respondWithError(w, http.StatusBadRequest, "fragment carries no tokens")
		return
	}

	sess, err := h.sessions.Create(r.Context(), res.AccessToken, res.RefreshToken, res.Userdata)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to open session")
		return
	}
	h.setCookie(w, sess)
	respondWithSuccess(w, http.StatusOK, &LoginResponse{User: res.Userdata})
}

// Refresh handles POST /auth/refresh, rotating the session's access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())
	if !sess.Authenticated() || sess.RefreshToken == "" {
		respondWithError(w, http.StatusUnauthorized, "no session to refresh")
		return
	}

	res, err := h.api.Auth.Refresh(r.Context(), sess.RefreshToken)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "refresh rejected")
		return
	}

	sess.Token = res.AccessToken
	if err := h.sessions.Update(r.Context(), sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to persist session")
		return
	}
	respondWithSuccess(w, http.StatusOK, &LoginResponse{User: sess.User})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())
	if sess == nil {
		h.clearCookie(w)
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
		return
	}

	if sess.Authenticated() {
		// Best effort: local teardown proceeds even if upstream logout fails.
		if err := h.api.WithToken(sess.Token, "", nil).Auth.Logout(r.Context()); err != nil {
			logging.Debug("upstream logout failed", "error", err.Error())
		}
	}

	h.resolver.Invalidate(sess.UserID())
	if err := h.scope.Clear(r.Context(), sess.ID); err != nil {
		logging.Debug("scope clear failed", "error", err.Error())
	}
	if err := h.sessions.Destroy(r.Context(), sess.ID); err != nil {
		logging.Warn("session destroy failed", "session_id", sess.ID, "error", err.Error())
	}
	h.clearCookie(w)
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// Me handles GET /auth/me, the session probe the frontend fires on boot.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())
	if !sess.Authenticated() {
		respondWithError(w, http.StatusUnauthorized, "no active session")
		return
	}
	respondWithSuccess(w, http.StatusOK, &LoginResponse{User: sess.User})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req upstream.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.api.Auth.Register(r.Context(), req); err != nil {
		if upstream.IsStatus(err, http.StatusConflict) {
			respondWithError(w, http.StatusConflict, "account already exists")
			return
		}
		respondWithError(w, http.StatusBadGateway, "registration failed")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusCreated, nil)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	// Always answer success so the endpoint can't be used to probe accounts.
	if err := h.api.Auth.ForgotPassword(r.Context(), req.Email); err != nil {
		logging.Debug("forgot-password relay failed", "error", err.Error())
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResetToken  string `json:"resetToken"`
		NewPassword string `json:"newPassword"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.api.Auth.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		respondWithError(w, http.StatusBadRequest, "reset rejected")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// VerifyEmail handles GET /auth/verify-email?token=...
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "token is required")
		return
	}
	if err := h.api.Auth.VerifyEmail(r.Context(), token); err != nil {
		respondWithError(w, http.StatusBadRequest, "verification rejected")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// ResendVerification handles POST /auth/resend-verification.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.api.Auth.ResendVerification(r.Context(), req.Email); err != nil {
		logging.Debug("resend-verification relay failed", "error", err.Error())
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}
