package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/client/services"
	"github.com/dmitrijs2005/libadmin/internal/filex"
)

// listing is one rendered page of a collection.
type listing struct {
	headers []string
	rows    [][]string
	page    int
	pages   int
	total   int
}

type resourceView interface {
	list(ctx context.Context, q services.ListQuery) (listing, error)
	show(ctx context.Context, id int64) (any, error)
	remove(ctx context.Context, id int64) error
	create(ctx context.Context, ask askFunc) (int64, error)
	update(ctx context.Context, id int64, ask askFunc) error
}

type view[T any] struct {
	res     *services.Resource[T]
	headers []string
	row     func(T) []string
	form    []field[T]
	id      func(*T) *int64
}

func (v view[T]) list(ctx context.Context, q services.ListQuery) (listing, error) {
	page, err := v.res.List(ctx, q)
	if err != nil {
		return listing{}, err
	}
	l := listing{headers: v.headers, page: page.Page, pages: page.TotalPages(), total: page.TotalElements}
	for _, item := range page.Data {
		l.rows = append(l.rows, v.row(item))
	}
	return l, nil
}

func (v view[T]) show(ctx context.Context, id int64) (any, error) {
	return v.res.Get(ctx, id)
}

func (v view[T]) remove(ctx context.Context, id int64) error {
	return v.res.Delete(ctx, id)
}

func (v view[T]) create(ctx context.Context, ask askFunc) (int64, error) {
	var rec T
	if err := fill(v.form, &rec, nil, ask); err != nil {
		return 0, err
	}
	out, err := v.res.Create(ctx, rec)
	if err != nil {
		return 0, err
	}
	return *v.id(&out), nil
}

// update offers the stored values as defaults and PATCHes only the form
// fields together with the id.
func (v view[T]) update(ctx context.Context, n int64, ask askFunc) error {
	current, err := v.res.Get(ctx, n)
	if err != nil {
		return err
	}
	var rec T
	*v.id(&rec) = n
	if err := fill(v.form, &rec, &current, ask); err != nil {
		return err
	}
	_, err = v.res.Update(ctx, rec)
	return err
}

func id(n int64) string { return strconv.FormatInt(n, 10) }

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "yes"
	default:
		return "no"
	}
}

func newViews(api *services.Catalog) map[string]resourceView {
	return map[string]resourceView{
		"users": view[models.User]{api.Users.Resource, []string{"ID", "Name", "Email", "Role", "Phone", "Active"},
			func(u models.User) []string {
				return []string{id(u.ID), u.Name, u.Email, string(u.Role), u.Phone, yesNo(u.Active)}
			},
			userForm(), func(u *models.User) *int64 { return &u.ID }},
		"roles": view[models.RoleRecord]{api.Roles, []string{"ID", "Name", "Description", "Permissions"},
			func(r models.RoleRecord) []string {
				return []string{id(r.ID), r.Name, r.Description, strconv.Itoa(len(r.Permissions))}
			},
			roleForm(), func(r *models.RoleRecord) *int64 { return &r.ID }},
		"permissions": view[models.Permission]{api.Permissions, []string{"ID", "Name", "Method", "API path", "Module"},
			func(p models.Permission) []string {
				return []string{id(p.ID), p.Name, p.Method, p.APIPath, p.Module}
			},
			permissionForm(), func(p *models.Permission) *int64 { return &p.ID }},
		"authors": view[models.Author]{api.Authors, []string{"ID", "Name", "Description"},
			func(x models.Author) []string { return []string{id(x.ID), x.Name, x.Description} },
			describedForm(
				func(x *models.Author) *string { return &x.Name },
				func(x *models.Author) *string { return &x.Description }),
			func(x *models.Author) *int64 { return &x.ID }},
		"publishers": view[models.Publisher]{api.Publishers, []string{"ID", "Name", "Description"},
			func(x models.Publisher) []string { return []string{id(x.ID), x.Name, x.Description} },
			describedForm(
				func(x *models.Publisher) *string { return &x.Name },
				func(x *models.Publisher) *string { return &x.Description }),
			func(x *models.Publisher) *int64 { return &x.ID }},
		"categories": view[models.Category]{api.Categories, []string{"ID", "Name", "Description"},
			func(x models.Category) []string { return []string{id(x.ID), x.Name, x.Description} },
			describedForm(
				func(x *models.Category) *string { return &x.Name },
				func(x *models.Category) *string { return &x.Description }),
			func(x *models.Category) *int64 { return &x.ID }},
		"books": view[models.Book]{api.Books, []string{"ID", "Name", "Year", "Qty", "Publisher", "Authors"},
			func(b models.Book) []string {
				return []string{id(b.ID), b.Name, strconv.Itoa(b.PublishYear), strconv.Itoa(b.Quantity), b.Publisher, strings.Join(b.Authors, ", ")}
			},
			bookForm(), func(b *models.Book) *int64 { return &b.ID }},
		"borrows": view[models.Borrow]{api.Borrows, []string{"ID", "User", "Book", "Borrowed", "Due", "Status"},
			func(b models.Borrow) []string {
				return []string{id(b.ID), id(b.UserID), id(b.BookID), b.BorrowedAt, b.DueAt, b.Status}
			},
			borrowForm(), func(b *models.Borrow) *int64 { return &b.ID }},
	}
}

func (a *App) resourceNames() string {
	names := make([]string, 0, len(a.views))
	for n := range a.views {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *App) lookupView(args []string, usage string) (resourceView, []string, error) {
	if len(args) == 0 {
		a.notify.Failure("Usage: "+usage, "Resources: "+a.resourceNames())
		return nil, nil, errUsage
	}
	v, ok := a.views[args[0]]
	if !ok {
		a.notify.Failure("Unknown resource "+args[0], "Resources: "+a.resourceNames())
		return nil, nil, errUsage
	}
	return v, args[1:], nil
}

func (a *App) parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		a.notify.Failure("Usage: "+usage, "")
		return 0, errUsage
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || n <= 0 {
		a.notify.Failure("Invalid id "+args[0], "")
		return 0, errUsage
	}
	return n, nil
}

// List prints one page of a collection as a table.
func (a *App) List(ctx context.Context, args []string) error {
	v, rest, err := a.lookupView(args, "list <resource> [flags]")
	if err != nil {
		return err
	}

	var q services.ListQuery
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&q.Page, "page", services.DefaultPage, "page number")
	fs.IntVar(&q.Size, "size", services.DefaultSize, "page size")
	fs.StringVar(&q.Sort, "sort", "id", "sort field")
	fs.BoolVar(&q.Desc, "desc", false, "sort descending")
	fs.StringVar(&q.Filter, "filter", "", "free-text filter")
	if err := fs.Parse(rest); err != nil {
		a.notify.Failure("Usage: list <resource> [-page n] [-size n] [-sort field] [-desc] [-filter text]", err.Error())
		return err
	}
	if q.Filter == "" && fs.NArg() > 0 {
		q.Filter = strings.Join(fs.Args(), " ")
	}

	l, err := v.list(ctx, q)
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	a.render(l)
	return nil
}

func (a *App) render(l listing) {
	if len(l.rows) == 0 {
		a.notify.Info("No records found.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(l.headers...).
		Rows(l.rows...)
	fmt.Fprintln(a.out, t.Render())
	fmt.Fprintf(a.out, "page %d of %d, %d total\n", l.page, l.pages, l.total)
}

// Show prints a single record as indented JSON.
func (a *App) Show(ctx context.Context, args []string) error {
	v, rest, err := a.lookupView(args, "show <resource> <id>")
	if err != nil {
		return err
	}
	n, err := a.parseID(rest, "show <resource> <id>")
	if err != nil {
		return err
	}

	item, err := v.show(ctx, n)
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	b, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}

// Create prompts for a new record's fields and stores it.
func (a *App) Create(ctx context.Context, args []string) error {
	v, _, err := a.lookupView(args, "create <resource>")
	if err != nil {
		return err
	}

	n, err := v.create(ctx, a.ask)
	if err != nil {
		a.formFailure(ctx, err)
		return err
	}
	a.notify.Success("Created", fmt.Sprintf("%s %d", args[0], n))
	return nil
}

// Update prompts for a record's fields, offering the stored values, and
// saves the answers.
func (a *App) Update(ctx context.Context, args []string) error {
	v, rest, err := a.lookupView(args, "update <resource> <id>")
	if err != nil {
		return err
	}
	n, err := a.parseID(rest, "update <resource> <id>")
	if err != nil {
		return err
	}

	if err := v.update(ctx, n, a.ask); err != nil {
		a.formFailure(ctx, err)
		return err
	}
	a.notify.Success("Updated", fmt.Sprintf("%s %d", args[0], n))
	return nil
}

func (a *App) ask(label, current string, secret bool) (string, error) {
	if secret {
		b, err := getPassword(a.out, label+": ")
		return string(b), err
	}
	return GetDefaultText(a.reader, label, current, a.out)
}

func (a *App) formFailure(ctx context.Context, err error) {
	if errors.Is(err, errInvalidValue) {
		a.notify.Failure("Invalid value", err.Error())
		return
	}
	a.fail(ctx, err)
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	v, rest, err := a.lookupView(args, "delete <resource> <id>")
	if err != nil {
		return err
	}
	n, err := a.parseID(rest, "delete <resource> <id>")
	if err != nil {
		return err
	}
	if !Confirm(a.reader, fmt.Sprintf("Delete %s %d?", args[0], n), a.out) {
		a.notify.Info("Cancelled.")
		return nil
	}

	if err := v.remove(ctx, n); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Deleted", fmt.Sprintf("%s %d", args[0], n))
	return nil
}

// Upload sends a local file to the backend's file store.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify.Failure("Usage: upload <file> [folder]", "")
		return errUsage
	}
	folder := "images"
	if len(args) > 1 {
		folder = args[1]
	}

	name, content, err := filex.ReadUpload(args[0])
	if err != nil {
		a.notify.Failure("Cannot read file", err.Error())
		return err
	}
	f, err := a.api.Files.Upload(ctx, name, content, folder)
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	a.notify.Success("Uploaded", fmt.Sprintf("%s (id %s) %s", f.Name, f.ID, f.URL))
	return nil
}
