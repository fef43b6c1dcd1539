package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
)

// Resource is the CRUD surface shared by every admin collection. Updates are
// PATCHed to the collection path with the id in the body.
type Resource[T any] struct {
	sender Sender
	name   string
	path   string

	// Columns lists the fields searched by a free-text filter.
	Columns []string
}

func NewResource[T any](s Sender, name string, columns ...string) *Resource[T] {
	return &Resource[T]{sender: s, name: name, path: apiPath("/" + name), Columns: columns}
}

// Name is the collection name, e.g. "books".
func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) Create(ctx context.Context, v T) (T, error) {
	var out T
	if err := callJSON(ctx, r.sender, gateway.Post(r.path), v, &out); err != nil {
		return out, fmt.Errorf("create %s: %w", r.name, err)
	}
	return out, nil
}

func (r *Resource[T]) Update(ctx context.Context, v T) (T, error) {
	var out T
	if err := callJSON(ctx, r.sender, gateway.Patch(r.path), v, &out); err != nil {
		return out, fmt.Errorf("update %s: %w", r.name, err)
	}
	return out, nil
}

// List fetches one page. Columns from q take precedence over the resource's.
func (r *Resource[T]) List(ctx context.Context, q ListQuery) (models.Page[T], error) {
	if len(q.Columns) == 0 {
		q.Columns = r.Columns
	}
	var out models.Page[T]
	if err := call(ctx, r.sender, gateway.Get(r.path).WithQuery(q.Encode()), &out); err != nil {
		return out, fmt.Errorf("list %s: %w", r.name, err)
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	if err := call(ctx, r.sender, gateway.Get(r.itemPath(id)), &out); err != nil {
		return out, fmt.Errorf("get %s %d: %w", r.name, id, err)
	}
	return out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	if err := call(ctx, r.sender, gateway.Delete(r.itemPath(id)), nil); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.name, id, err)
	}
	return nil
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}
