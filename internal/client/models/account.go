// Package models holds the client-side data types exchanged with the
// library backend.
package models

// Role names the backend's access level for an account.
type Role string

const (
	RoleAnonymous Role = ""
	RoleAdmin     Role = "ADMIN"
	RoleUser      Role = "USER"
)

// Account is the signed-in user's identity and contact data.
type Account struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	Role      Role   `json:"role,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    bool   `json:"active,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// IsAnonymous reports whether a is the zero identity.
func (a Account) IsAnonymous() bool {
	return a.ID == 0
}

// IsAdmin reports whether a carries the administrative role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ProfileUpdate carries the editable profile fields. Empty fields are left
// unchanged when merged into an Account.
type ProfileUpdate struct {
	ID      int64  `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Merge returns a copy of a with the non-empty fields of u applied.
func (a Account) Merge(u ProfileUpdate) Account {
	if u.Name != "" {
		a.Name = u.Name
	}
	if u.Email != "" {
		a.Email = u.Email
	}
	if u.Address != "" {
		a.Address = u.Address
	}
	if u.Phone != "" {
		a.Phone = u.Phone
	}
	return a
}

// LoginResult is the data envelope of a successful login.
type LoginResult struct {
	AccessToken string  `json:"accessToken"`
	User        Account `json:"user"`
}

// RefreshResult is the data envelope of a successful token refresh.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// MailType selects which code the backend mails out.
type MailType string

const (
	MailActivateAccount MailType = "activate-account"
	MailResetPassword   MailType = "reset-password"
)

type Activation struct {
	Email string `json:"email"`
	OTP   int    `json:"otp"`
}

type ResendMail struct {
	Email string   `json:"email"`
	Type  MailType `json:"type"`
}

type PasswordReset struct {
	Email    string `json:"email"`
	OTP      int    `json:"otp"`
	Password string `json:"password"`
}

type PasswordChange struct {
	ID              int64  `json:"id"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
