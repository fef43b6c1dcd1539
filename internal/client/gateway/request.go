package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Request describes one outbound call. It is a value: the With* methods
// return modified copies and never touch the receiver, so the retry path
// cannot leak state into the caller's request.
type Request struct {
	Method string
	Path   string

	// Query is the raw, already encoded query string without '?'.
	Query  string
	Header http.Header
	Body   []byte

	// ID is sent as X-Request-ID; the single retry reuses it.
	ID string

	// Retried marks a request that has already been replayed after a refresh.
	Retried bool
}

// NewRequest builds a request with a fresh request ID.
func NewRequest(method, path string) Request {
	return Request{Method: method, Path: path, ID: uuid.NewString()}
}

func Get(path string) Request    { return NewRequest(http.MethodGet, path) }
func Post(path string) Request   { return NewRequest(http.MethodPost, path) }
func Patch(path string) Request  { return NewRequest(http.MethodPatch, path) }
func Delete(path string) Request { return NewRequest(http.MethodDelete, path) }

// WithQuery sets the raw query string.
func (r Request) WithQuery(rawQuery string) Request {
	r.Query = rawQuery
	return r
}

// WithHeader returns a copy with key set to value.
func (r Request) WithHeader(key, value string) Request {
	h := r.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Set(key, value)
	r.Header = h
	return r
}

// WithBody returns a copy carrying body with the given content type.
func (r Request) WithBody(contentType string, body []byte) Request {
	r = r.WithHeader("Content-Type", contentType)
	r.Body = append([]byte(nil), body...)
	return r
}

// WithJSON returns a copy carrying v encoded as JSON.
func (r Request) WithJSON(v any) (Request, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return r, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return r.WithBody("application/json", b), nil
}

// WithRetried returns a copy marked as already retried.
func (r Request) WithRetried() Request {
	r.Retried = true
	return r
}
