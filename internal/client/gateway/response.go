package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Messages decodes the envelope's message field, which the backend sends
// either as a single string or as a list of validation strings.
type Messages []string

func (m *Messages) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = nil
		return nil
	}
	if b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*m = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = Messages{s}
	return nil
}

// First returns the first message or "".
func (m Messages) First() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Message    Messages        `json:"message"`
	Error      string          `json:"error"`
	StatusCode int             `json:"statusCode"`
}

// Response is the normalized outcome of a Send.
type Response struct {
	// Status is the HTTP status; 0 when the request never got a response.
	Status int
	Header http.Header

	// Data is the envelope's data member, or the whole body when the body
	// is not an envelope.
	Data       json.RawMessage
	Message    Messages
	Kind       string
	StatusCode int
	Raw        []byte

	// TransportErr is set when the request failed before a response arrived.
	TransportErr error
}

func newResponse(status int, header http.Header, body []byte) *Response {
	r := &Response{Status: status, Header: header, Raw: body}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		r.Data = body
		return r
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		r.Data = body
		return r
	}

	r.Message = env.Message
	r.Kind = env.Error
	r.StatusCode = env.StatusCode
	if _, ok := fields["data"]; ok {
		r.Data = env.Data
	} else if !isEnvelope(fields) {
		r.Data = body
	}
	return r
}

func isEnvelope(fields map[string]json.RawMessage) bool {
	for _, k := range []string{"data", "message", "error", "statusCode"} {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

func transportFailure(err error) *Response {
	return &Response{TransportErr: err}
}

// OK reports a 2xx response.
func (r *Response) OK() bool {
	return r.TransportErr == nil && r.Status >= 200 && r.Status < 300
}

// HasData reports whether the response carries a non-null data payload.
func (r *Response) HasData() bool {
	d := bytes.TrimSpace(r.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// Err returns nil for a 2xx response, the transport error when no response
// arrived, and an *APIError otherwise.
func (r *Response) Err() error {
	if r.TransportErr != nil {
		return fmt.Errorf("%w: %w", ErrTransport, r.TransportErr)
	}
	if r.OK() {
		return nil
	}
	kind := r.Kind
	if kind == "" {
		kind = http.StatusText(r.Status)
	}
	return &APIError{Status: r.Status, Kind: kind, Messages: r.Message, Body: r.Raw}
}

// Decode unmarshals the data payload into v. It returns the response error
// for a failed call and ErrNoData when a successful call carried no data.
func (r *Response) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if !r.HasData() {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status   int
	Kind     string
	Messages Messages
	Body     []byte
}

func (e *APIError) Error() string {
	if msg := e.Messages.First(); msg != "" {
		return fmt.Sprintf("backend error %d %s: %s", e.Status, e.Kind, msg)
	}
	return fmt.Sprintf("backend error %d %s", e.Status, e.Kind)
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}
