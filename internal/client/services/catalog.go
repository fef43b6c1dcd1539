package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
)

// UserService adds password changes to the users collection.
type UserService struct {
	*Resource[models.User]
}

func (u *UserService) ChangePassword(ctx context.Context, c models.PasswordChange) error {
	if err := callJSON(ctx, u.sender, gateway.Post(u.path+"/change-password"), c, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// Catalog groups every backend collection behind one Sender.
type Catalog struct {
	Auth        AuthService
	Users       *UserService
	Roles       *Resource[models.RoleRecord]
	Permissions *Resource[models.Permission]
	Authors     *Resource[models.Author]
	Publishers  *Resource[models.Publisher]
	Categories  *Resource[models.Category]
	Books       *Resource[models.Book]
	Borrows     *Resource[models.Borrow]
	Files       *FileService
}

func NewCatalog(s Sender) *Catalog {
	return &Catalog{
		Auth:        NewAuthService(s),
		Users:       &UserService{NewResource[models.User](s, "users", "name", "email", "phone", "address")},
		Roles:       NewResource[models.RoleRecord](s, "roles", "name", "description"),
		Permissions: NewResource[models.Permission](s, "permissions", "name", "apiPath", "module"),
		Authors:     NewResource[models.Author](s, "authors", "name", "description"),
		Publishers:  NewResource[models.Publisher](s, "publishers", "name", "description"),
		Categories:  NewResource[models.Category](s, "categories", "name", "description"),
		Books:       NewResource[models.Book](s, "books", "name", "description", "publisher"),
		Borrows:     NewResource[models.Borrow](s, "borrows", "status"),
		Files:       NewFileService(s),
	}
}
