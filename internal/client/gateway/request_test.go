package gateway

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_AssignsRequestID(t *testing.T) {
	a := Get("/a")
	b := Get("/a")

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, http.MethodGet, a.Method)
	assert.Equal(t, http.MethodPost, Post("/x").Method)
	assert.Equal(t, http.MethodPatch, Patch("/x").Method)
	assert.Equal(t, http.MethodDelete, Delete("/x").Method)
}

func TestRequest_WithMethodsCopy(t *testing.T) {
	orig := Get("/books").WithHeader("X-Trace", "1")

	changed := orig.WithHeader("X-Trace", "2").WithQuery("page=1").WithRetried()

	assert.Equal(t, "1", orig.Header.Get("X-Trace"))
	assert.Equal(t, "", orig.Query)
	assert.False(t, orig.Retried)

	assert.Equal(t, "2", changed.Header.Get("X-Trace"))
	assert.Equal(t, "page=1", changed.Query)
	assert.True(t, changed.Retried)
	assert.Equal(t, orig.ID, changed.ID)
}

func TestRequest_WithBodyCopiesBytes(t *testing.T) {
	body := []byte("abc")
	r := Post("/x").WithBody("text/plain", body)
	body[0] = 'X'

	assert.Equal(t, []byte("abc"), r.Body)
	assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
}

func TestRequest_WithJSON(t *testing.T) {
	r, err := Post("/x").WithJSON(map[string]int{"id": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(r.Body))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

	_, err = Post("/x").WithJSON(make(chan int))
	require.Error(t, err)
}
