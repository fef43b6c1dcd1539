package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
)

// AuthService covers the /auth endpoints.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) (models.Account, error)
	Login(ctx context.Context, c models.Credentials) (models.LoginResult, error)
	Account(ctx context.Context) (models.Account, error)
	Logout(ctx context.Context) error
	Activate(ctx context.Context, a models.Activation) error
	ResendMail(ctx context.Context, m models.ResendMail) error
	ResetPassword(ctx context.Context, r models.PasswordReset) error
}

type authService struct {
	sender Sender
}

func NewAuthService(s Sender) AuthService {
	return &authService{sender: s}
}

func (a *authService) Register(ctx context.Context, r models.Registration) (models.Account, error) {
	var out models.Account
	if err := callJSON(ctx, a.sender, gateway.Post(apiPath("/auth/register")), r, &out); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

func (a *authService) Login(ctx context.Context, c models.Credentials) (models.LoginResult, error) {
	var out models.LoginResult
	if err := callJSON(ctx, a.sender, gateway.Post(apiPath("/auth/login")), c, &out); err != nil {
		return models.LoginResult{}, err
	}
	return out, nil
}

// Account fetches the identity behind the current credential.
func (a *authService) Account(ctx context.Context) (models.Account, error) {
	var out models.Account
	if err := call(ctx, a.sender, gateway.Get(apiPath("/auth")), &out); err != nil {
		return models.Account{}, err
	}
	return out, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return call(ctx, a.sender, gateway.Post(apiPath("/auth/logout")), nil)
}

func (a *authService) Activate(ctx context.Context, act models.Activation) error {
	if err := callJSON(ctx, a.sender, gateway.Post(apiPath("/auth/activate")), act, nil); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	return nil
}

func (a *authService) ResendMail(ctx context.Context, m models.ResendMail) error {
	return callJSON(ctx, a.sender, gateway.Post(apiPath("/auth/resend-mail")), m, nil)
}

func (a *authService) ResetPassword(ctx context.Context, r models.PasswordReset) error {
	if err := callJSON(ctx, a.sender, gateway.Post(apiPath("/auth/reset-password")), r, nil); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
