package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/minions-03/billing-system/internal/auth"
	"github.com/minions-03/billing-system/internal/metrics"
	"github.com/minions-03/billing-system/internal/middleware"
	"github.com/minions-03/billing-system/pkg/api"
	"github.com/minions-03/billing-system/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	metrics       *metrics.Metrics
	logger        *slog.Logger

	// SecureCookie marks the session cookie Secure. Set it when the server
	// is behind TLS.
	SecureCookie bool
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, m *metrics.Metrics, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		metrics:       m,
		logger:        logger,
	}
}

// Login checks the shop credentials and returns a session token. The token
// is also set as the session cookie for browser clients.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "username", req.Msg.Username)

	if req.Msg.Username == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	username, err := s.authenticator.Authenticate(ctx, req.Msg.Username, req.Msg.Password)
	if err != nil {
		s.metrics.AuthAttempt("failure")
		s.logger.Warn("Login failed", "username", req.Msg.Username, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.jwtManager.Generate(username)
	if err != nil {
		s.logger.Error("Failed to generate token", "username", username, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.AuthAttempt("success")

	resp := connect.NewResponse(&api.LoginResponse{
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	resp.Header().Add("Set-Cookie", s.sessionCookie(token, s.jwtManager.TokenDuration()).String())

	s.logger.Info("Logged in", "username", username)
	return resp, nil
}

// Logout clears the session cookie. Tokens are stateless, so a client
// holding a bearer token simply discards it.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	resp := connect.NewResponse(&api.LogoutResponse{})
	resp.Header().Add("Set-Cookie", s.sessionCookie("", 0).String())
	return resp, nil
}

func (s *AuthService) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.SecureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	}
	if ttl <= 0 {
		c.MaxAge = -1
	}
	return c
}
