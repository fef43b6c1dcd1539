package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_APIError(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out)

	err := fmt.Errorf("list books: %w", &gateway.APIError{
		Status:   http.StatusBadRequest,
		Kind:     "Bad Request",
		Messages: gateway.Messages{"name must not be empty", "year must be positive"},
	})
	n.Error(err)

	assert.Contains(t, out.String(), "Bad Request")
	assert.Contains(t, out.String(), "name must not be empty")
	assert.NotContains(t, out.String(), "year must be positive")
}

func TestNotifier_TransportAndPlain(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out)

	n.Error(fmt.Errorf("%w: connection refused", gateway.ErrTransport))
	assert.Contains(t, out.String(), "Backend unreachable")

	out.Reset()
	n.Error(errors.New("disk full"))
	assert.Contains(t, out.String(), "Error")
	assert.Contains(t, out.String(), "disk full")
}

func TestNotifier_Success(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(&out)

	n.Success("Saved", "")
	n.Info("hello")
	assert.Contains(t, out.String(), "Saved")
	assert.Contains(t, out.String(), "hello")
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
}
