package cli

import (
	"context"

	"github.com/dmitrijs2005/libadmin/internal/client/models"
)

// Profile edits the signed-in user's contact data. Empty answers keep the
// current value.
func (a *App) Profile(ctx context.Context) error {
	acc := a.session.Account(ctx)

	u := models.ProfileUpdate{ID: acc.ID}
	var err error
	if u.Name, err = GetDefaultText(a.reader, "Name", acc.Name, a.out); err != nil {
		return err
	}
	if u.Email, err = GetDefaultText(a.reader, "Email", acc.Email, a.out); err != nil {
		return err
	}
	if u.Phone, err = GetDefaultText(a.reader, "Phone", acc.Phone, a.out); err != nil {
		return err
	}
	if u.Address, err = GetDefaultText(a.reader, "Address", acc.Address, a.out); err != nil {
		return err
	}

	updated, err := a.api.Users.Update(ctx, models.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	})
	if err != nil {
		a.fail(ctx, err)
		return err
	}

	if err := a.session.UpdateProfile(models.ProfileUpdate{
		Name:    updated.Name,
		Email:   updated.Email,
		Phone:   updated.Phone,
		Address: updated.Address,
	}); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Profile updated", "")
	return nil
}

// Passwd changes the signed-in user's password.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(a.out, "Current password: ")
	if err != nil {
		return err
	}
	next, err := getPassword(a.out, "New password: ")
	if err != nil {
		return err
	}
	again, err := getPassword(a.out, "Repeat new password: ")
	if err != nil {
		return err
	}
	if string(next) != string(again) {
		a.notify.Failure("Passwords do not match", "")
		return errPasswordMismatch
	}

	err = a.api.Users.ChangePassword(ctx, models.PasswordChange{
		ID:              a.session.Account(ctx).ID,
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Password changed", "")
	return nil
}
