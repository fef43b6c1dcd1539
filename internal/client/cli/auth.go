package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/client/session"
)

// Register prompts for the new account's details, creates it and then
// offers to enter the mailed activation code right away.
func (a *App) Register(ctx context.Context) error {
	prev := a.nav.Screen()
	a.nav.Go(ScreenRegister)
	defer func() {
		if a.nav.Screen() == ScreenRegister {
			a.nav.Go(prev)
		}
	}()

	var r models.Registration
	var err error
	if r.Name, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if r.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	r.Password = string(password)
	if r.Phone, err = getSimpleText(a.reader, "Enter phone (optional)", a.out); err != nil {
		return err
	}
	if r.Address, err = getSimpleText(a.reader, "Enter address (optional)", a.out); err != nil {
		return err
	}

	if _, err := a.api.Auth.Register(ctx, r); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Account created", "An activation code was sent to "+r.Email)

	a.nav.Go(ScreenLogin)
	return a.activate(ctx, r.Email)
}

// Login prompts for credentials and signs in. An account that is not yet
// activated is offered a fresh activation code.
func (a *App) Login(ctx context.Context) error {
	prev := a.nav.Screen()
	a.nav.Go(ScreenLogin)

	last, err := a.history.LastUsername(ctx)
	if err != nil {
		a.log.Warn(ctx, "last username unavailable", "error", err)
	}
	username, err := GetDefaultText(a.reader, "Enter username", last, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}

	route, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, session.ErrAccountInactive) {
			a.notify.Failure("Account not activated", "Activate the account before logging in.")
			if Confirm(a.reader, "Send a new activation code to "+username+"?", a.out) {
				if err := a.sendCode(ctx, username, models.MailActivateAccount); err == nil {
					_ = a.activate(ctx, username)
				}
			}
			return err
		}
		a.fail(ctx, err)
		if prev != ScreenRegister {
			a.nav.Go(ScreenLogin)
		}
		return err
	}

	a.nav.GoRoute(route)
	a.notify.Success("Logged in", "Welcome, "+displayName(a.session.Account(ctx)))
	return nil
}

// Activate prompts for an email and the mailed code.
func (a *App) Activate(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	return a.activate(ctx, email)
}

func (a *App) activate(ctx context.Context, email string) error {
	otp, err := GetNumber(a.reader, "Enter the code mailed to "+email, a.out)
	if err != nil {
		a.notify.Failure("Invalid code", err.Error())
		return err
	}
	if err := a.api.Auth.Activate(ctx, models.Activation{Email: email, OTP: otp}); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Account activated", "You can log in now.")
	return nil
}

// Resend mails a fresh activation or password-reset code.
func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	kind := models.MailActivateAccount
	if Confirm(a.reader, "Is this for a password reset?", a.out) {
		kind = models.MailResetPassword
	}
	return a.sendCode(ctx, email, kind)
}

func (a *App) sendCode(ctx context.Context, email string, kind models.MailType) error {
	if err := a.session.RequestCode(ctx, email, kind); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Code sent", "Check the inbox of "+email)
	return nil
}

// Reset runs the forgotten-password flow: request a code, then set a new
// password with it.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.sendCode(ctx, email, models.MailResetPassword); err != nil {
		return err
	}
	otp, err := GetNumber(a.reader, "Enter the code mailed to "+email, a.out)
	if err != nil {
		a.notify.Failure("Invalid code", err.Error())
		return err
	}
	password, err := getPassword(a.out, "Enter new password: ")
	if err != nil {
		return err
	}

	if err := a.api.Auth.ResetPassword(ctx, models.PasswordReset{Email: email, OTP: otp, Password: string(password)}); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Password reset", "You can log in with the new password.")
	return nil
}

// Logout ends the session; the local credential is cleared even when the
// backend call fails.
func (a *App) Logout(ctx context.Context) error {
	route, err := a.session.Logout(ctx)
	a.nav.GoRoute(route)
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Logged out", "")
	return nil
}

// Whoami prints the signed-in account and the access token's expiry.
func (a *App) Whoami(ctx context.Context) error {
	acc := a.session.Account(ctx)
	fmt.Fprintf(a.out, "ID:       %d\n", acc.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", acc.Name)
	fmt.Fprintf(a.out, "Username: %s\n", acc.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", acc.Email)
	fmt.Fprintf(a.out, "Role:     %s\n", acc.Role)

	claims, err := a.session.TokenClaims(ctx)
	if err != nil {
		a.log.Debug(ctx, "token claims unavailable", "error", err)
		return nil
	}
	if claims.ExpiresAt != nil {
		left := time.Until(claims.ExpiresAt.Time).Round(time.Second)
		if left > 0 {
			fmt.Fprintf(a.out, "Token:    expires in %s\n", left)
		} else {
			fmt.Fprintf(a.out, "Token:    expired %s ago\n", -left)
		}
	}
	return nil
}

func displayName(acc models.Account) string {
	switch {
	case acc.Username != "":
		return acc.Username
	case acc.Name != "":
		return acc.Name
	default:
		return acc.Email
	}
}
