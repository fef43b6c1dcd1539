package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/libadmin/internal/client/models"
)

var errInvalidValue = errors.New("invalid value")

// askFunc prompts for one form value. current is shown as the default;
// secret values are read without echo and never have a default.
type askFunc func(label, current string, secret bool) (string, error)

// field is one prompted attribute of a record of type T.
type field[T any] struct {
	label      string
	secret     bool
	createOnly bool
	get        func(*T) string
	set        func(*T, string) error
}

// fill prompts for every field of form and writes the answers into rec.
// When current is set its values are offered as defaults. Empty answers leave
// the field unset.
func fill[T any](form []field[T], rec, current *T, ask askFunc) error {
	for _, f := range form {
		if current != nil && f.createOnly {
			continue
		}
		def := ""
		if current != nil && !f.secret {
			def = f.get(current)
		}
		v, err := ask(f.label, def, f.secret)
		if err != nil {
			return err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if err := f.set(rec, v); err != nil {
			return fmt.Errorf("%w for %s: %w", errInvalidValue, f.label, err)
		}
	}
	return nil
}

func textField[T any](label string, p func(*T) *string) field[T] {
	return field[T]{
		label: label,
		get:   func(v *T) string { return *p(v) },
		set:   func(v *T, s string) error { *p(v) = s; return nil },
	}
}

func secretField[T any](label string, p func(*T) *string) field[T] {
	f := textField(label, p)
	f.secret, f.createOnly = true, true
	return f
}

func intField[T any](label string, p func(*T) *int) field[T] {
	return field[T]{
		label: label,
		get: func(v *T) string {
			if *p(v) == 0 {
				return ""
			}
			return strconv.Itoa(*p(v))
		},
		set: func(v *T, s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("%q is not a number", s)
			}
			*p(v) = n
			return nil
		},
	}
}

func refField[T any](label string, p func(*T) *int64) field[T] {
	return field[T]{
		label: label,
		get: func(v *T) string {
			if *p(v) == 0 {
				return ""
			}
			return id(*p(v))
		},
		set: func(v *T, s string) error {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil || n <= 0 {
				return fmt.Errorf("%q is not an id", s)
			}
			*p(v) = n
			return nil
		},
	}
}

// listField reads a comma-separated list.
func listField[T any](label string, p func(*T) *[]string) field[T] {
	return field[T]{
		label: label,
		get:   func(v *T) string { return strings.Join(*p(v), ", ") },
		set: func(v *T, s string) error {
			var out []string
			for _, part := range strings.Split(s, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
			*p(v) = out
			return nil
		},
	}
}

// idsField reads a comma-separated list of ids.
func idsField[T any](label string, p func(*T) *[]int64) field[T] {
	return field[T]{
		label: label,
		get: func(v *T) string {
			parts := make([]string, 0, len(*p(v)))
			for _, n := range *p(v) {
				parts = append(parts, id(n))
			}
			return strings.Join(parts, ", ")
		},
		set: func(v *T, s string) error {
			var out []int64
			for _, part := range strings.Split(s, ",") {
				if part = strings.TrimSpace(part); part == "" {
					continue
				}
				n, err := strconv.ParseInt(part, 10, 64)
				if err != nil || n <= 0 {
					return fmt.Errorf("%q is not an id", part)
				}
				out = append(out, n)
			}
			*p(v) = out
			return nil
		},
	}
}

func boolField[T any](label string, p func(*T) **bool) field[T] {
	return field[T]{
		label: label + " (yes/no)",
		get:   func(v *T) string { return yesNo(*p(v)) },
		set: func(v *T, s string) error {
			var b bool
			switch strings.ToLower(s) {
			case "y", "yes", "true":
				b = true
			case "n", "no", "false":
			default:
				return fmt.Errorf("%q is not yes or no", s)
			}
			*p(v) = &b
			return nil
		},
	}
}

func roleField[T any](label string, p func(*T) *models.Role) field[T] {
	return field[T]{
		label: label + " (ADMIN/USER)",
		get:   func(v *T) string { return string(*p(v)) },
		set: func(v *T, s string) error {
			r := models.Role(strings.ToUpper(s))
			if r != models.RoleAdmin && r != models.RoleUser {
				return fmt.Errorf("unknown role %q", s)
			}
			*p(v) = r
			return nil
		},
	}
}

func userForm() []field[models.User] {
	return []field[models.User]{
		textField("Name", func(u *models.User) *string { return &u.Name }),
		textField("Email", func(u *models.User) *string { return &u.Email }),
		secretField("Password", func(u *models.User) *string { return &u.Password }),
		roleField("Role", func(u *models.User) *models.Role { return &u.Role }),
		textField("Phone", func(u *models.User) *string { return &u.Phone }),
		textField("Address", func(u *models.User) *string { return &u.Address }),
		boolField("Active", func(u *models.User) **bool { return &u.Active }),
	}
}

func roleForm() []field[models.RoleRecord] {
	return []field[models.RoleRecord]{
		textField("Name", func(r *models.RoleRecord) *string { return &r.Name }),
		textField("Description", func(r *models.RoleRecord) *string { return &r.Description }),
		idsField("Permission ids", func(r *models.RoleRecord) *[]int64 { return &r.Permissions }),
	}
}

func permissionForm() []field[models.Permission] {
	return []field[models.Permission]{
		textField("Name", func(p *models.Permission) *string { return &p.Name }),
		textField("API path", func(p *models.Permission) *string { return &p.APIPath }),
		textField("Method", func(p *models.Permission) *string { return &p.Method }),
		textField("Module", func(p *models.Permission) *string { return &p.Module }),
	}
}

// describedForm serves authors, publishers and categories, which share a
// name and a description.
func describedForm[T any](name, description func(*T) *string) []field[T] {
	return []field[T]{
		textField("Name", name),
		textField("Description", description),
	}
}

func bookForm() []field[models.Book] {
	return []field[models.Book]{
		textField("Name", func(b *models.Book) *string { return &b.Name }),
		textField("Description", func(b *models.Book) *string { return &b.Description }),
		intField("Publish year", func(b *models.Book) *int { return &b.PublishYear }),
		intField("Quantity", func(b *models.Book) *int { return &b.Quantity }),
		listField("Authors", func(b *models.Book) *[]string { return &b.Authors }),
		listField("Categories", func(b *models.Book) *[]string { return &b.Categories }),
		textField("Publisher", func(b *models.Book) *string { return &b.Publisher }),
		boolField("Active", func(b *models.Book) **bool { return &b.Active }),
	}
}

func borrowForm() []field[models.Borrow] {
	return []field[models.Borrow]{
		refField("User id", func(b *models.Borrow) *int64 { return &b.UserID }),
		refField("Book id", func(b *models.Borrow) *int64 { return &b.BookID }),
		textField("Due at", func(b *models.Borrow) *string { return &b.DueAt }),
		textField("Returned at", func(b *models.Borrow) *string { return &b.ReturnedAt }),
		textField("Status", func(b *models.Borrow) *string { return &b.Status }),
	}
}
