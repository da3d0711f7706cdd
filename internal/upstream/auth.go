package upstream

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/session"
)

// AuthService fronts the upstream /auth endpoint set.
type AuthService struct {
	client *Client
}

// RegisterRequest is the registration payload relayed to the backend. The
// captcha token travels with it when the portal has reCAPTCHA enabled.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CaptchaToken string `json:"captchaToken,omitempty"`
}

// LoginResult is the (multi-shaped) answer of /auth/login: a plain token
// pair, a pending two-factor challenge, or a verification requirement.
type LoginResult struct {
	RequiresVerification bool          `json:"requiresVerification,omitempty"`
	Requires2FA          bool          `json:"requires2FA,omitempty"`
	TempToken            string        `json:"tempToken,omitempty"`
	AccessToken          string        `json:"accessToken,omitempty"`
	RefreshToken         string        `json:"refreshToken,omitempty"`
	Userdata             *session.User `json:"userdata,omitempty"`
}

// RefreshResult is the answer of /auth/refresh.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}

// RoleCheckResult is the answer of /auth/check-role.
type RoleCheckResult struct {
	Role     string        `json:"role"`
	Userdata *session.User `json:"userdata,omitempty"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	return s.client.post(ctx, "/auth/register", req, nil)
}

// CheckEmail reports whether an account already exists for the address. A
// backend without the endpoint (404) is treated as "unknown", not an error.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	q := url.Values{}
	q.Set("email", email)
	err := s.client.get(ctx, "/auth/check-email", q, &out)
	if err != nil {
		if IsStatus(err, 404) {
			return false, nil
		}
		return false, err
	}
	return out.Exists, nil
}

func (s *AuthService) Login(ctx context.Context, email, password, captchaToken string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	if captchaToken != "" {
		body["captchaToken"] = captchaToken
	}
	var out LoginResult
	if err := s.client.post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Verify2FA(ctx context.Context, tempToken, otp string) (*LoginResult, error) {
	body := map[string]string{"tempToken": tempToken, "otp": otp}
	var out LoginResult
	if err := s.client.post(ctx, "/auth/verify-2fa", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Enable2FA(ctx context.Context, userID int64) error {
	return s.client.post(ctx, "/auth/enable-2fa", map[string]int64{"userId": userID}, nil)
}

func (s *AuthService) Disable2FA(ctx context.Context, userID int64) error {
	return s.client.post(ctx, "/auth/disable-2fa", map[string]int64{"userId": userID}, nil)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out RefreshResult
	if err := s.client.post(ctx, "/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.post(ctx, "/auth/logout", nil, nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.client.post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"resetToken": resetToken, "newPassword": newPassword}
	return s.client.post(ctx, "/auth/reset-password", body, nil)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	q := url.Values{}
	q.Set("token", token)
	return s.client.get(ctx, "/auth/verify-email", q, nil)
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	return s.client.post(ctx, "/auth/resend-verification", map[string]string{"email": email}, nil)
}

func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return s.client.post(ctx, "/auth/change-password", body, nil)
}

// CheckRole resolves the role (and, when the backend includes it, the user
// record) behind the client's bearer token.
func (s *AuthService) CheckRole(ctx context.Context) (*RoleCheckResult, error) {
	var out RoleCheckResult
	if err := s.client.get(ctx, "/auth/check-role", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleStartURL builds the SSO kickoff URL the browser is sent to.
func (s *AuthService) GoogleStartURL(redirectURI string) string {
	return s.client.baseURL + "/auth/google/start?redirect_uri=" + url.QueryEscape(redirectURI)
}

// SSOResult is the token bundle the SSO flow hands back in a URL fragment.
type SSOResult struct {
	Provider     string
	Error        string
	AccessToken  string
	RefreshToken string
	Userdata     *session.User
}

// ParseSSOFragment decodes the fragment the SSO callback appends to the
// portal URL ("sso=google&accessToken=...&id=..."). A fragment carrying
// neither an sso marker nor a token yields an empty result.
func ParseSSOFragment(fragment string) SSOResult {
	fragment = strings.TrimPrefix(fragment, "#")
	if i := strings.LastIndexByte(fragment, '#'); i >= 0 {
		fragment = fragment[i+1:]
	}
	if !strings.Contains(fragment, "accessToken=") && !strings.Contains(fragment, "sso=") {
		return SSOResult{}
	}

	p, err := url.ParseQuery(fragment)
	if err != nil {
		return SSOResult{}
	}

	res := SSOResult{
		Provider:     p.Get("sso"),
		Error:        p.Get("error"),
		AccessToken:  p.Get("accessToken"),
		RefreshToken: p.Get("refreshToken"),
	}
	if p.Get("id") != "" {
		id, _ := strconv.ParseInt(p.Get("id"), 10, 64)
		res.Userdata = &session.User{
			ID:           id,
			Email:        p.Get("email"),
			FirstName:    p.Get("first_name"),
			LastName:     p.Get("last_name"),
			TwoFAEnabled: p.Get("twoFAEnabled") == "1",
		}
		res.Userdata.Role = constants.Role(p.Get("role"))
	}
	return res
}
