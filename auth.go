package storefront

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/craftmarket/storefront-go/pkg/session"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest carries account-creation fields. Account creation
// rules (uniqueness, password policy) are enforced by the remote API.
type SignupRequest struct {
	Email       string              `json:"email" validate:"required,email"`
	Password    string              `json:"password" validate:"required,min=6"`
	FirstName   string              `json:"first_name" validate:"required"`
	LastName    string              `json:"last_name" validate:"required"`
	AccountType session.AccountType `json:"account_type" validate:"required,oneof=consumer seller"`
}

// authResponse is the minimal shape the session core needs from the
// auth endpoints; extra fields pass through to authenticated callers
// via Me.
type authResponse struct {
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

// Login authenticates and populates the credential store. The durable
// record (and, as a compatibility shim, the legacy bare-token key) is
// written as part of the store mutation.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*session.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var resp authResponse
	if err := c.api.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	c.sessions.SetSession(resp.User, resp.Token)
	c.log.InfoContext(ctx, "logged in", slog.String("user_id", userID(resp.User)))
	return resp.User, nil
}

// Signup creates an account and logs it in.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*session.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var resp authResponse
	if err := c.api.Do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}

	c.sessions.SetSession(resp.User, resp.Token)
	c.log.InfoContext(ctx, "signed up", slog.String("user_id", userID(resp.User)))
	return resp.User, nil
}

// Logout best-effort revokes the token server-side, then clears the
// session locally. The local clear is unconditional: logout succeeds
// even when the API is unreachable.
func (c *Client) Logout(ctx context.Context) {
	if c.sessions.Token() != "" {
		if err := c.api.Do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
			c.log.DebugContext(ctx, "server-side logout failed", slog.String("error", err.Error()))
		}
	}
	c.sessions.ClearSession()
}

// Me fetches the authenticated profile and refreshes the stored user.
// This is the lazy identity refresh for sessions hydrated from the
// legacy bare-token key, which carry a token but no user.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.api.Do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}

	c.sessions.SetSession(&user, c.sessions.Token())
	return &user, nil
}

func userID(u *session.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
