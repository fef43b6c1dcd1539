package models

// User is an account as managed from the admin area.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      Role   `json:"role,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    *bool  `json:"active,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// RoleRecord is a named set of permissions.
type RoleRecord struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Permissions []int64 `json:"permissions,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

type Permission struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	APIPath   string `json:"apiPath,omitempty"`
	Module    string `json:"module,omitempty"`
	Method    string `json:"method,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type Author struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type Publisher struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type Book struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	PublishYear int      `json:"publishYear,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Borrow records a book lent to a user.
type Borrow struct {
	ID         int64  `json:"id,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	BookID     int64  `json:"bookId,omitempty"`
	BorrowedAt string `json:"borrowedAt,omitempty"`
	DueAt      string `json:"dueAt,omitempty"`
	ReturnedAt string `json:"returnedAt,omitempty"`
	Status     string `json:"status,omitempty"`
}

// UploadedFile is the data envelope of a file upload.
type UploadedFile struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}
