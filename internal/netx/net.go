// Package netx holds HTTP helpers shared by the client transport.
package netx

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
)

// JoinURL appends path (and an optional raw query) to base, collapsing the
// slash between them.
func JoinURL(base, path, rawQuery string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if rawQuery != "" {
		u.RawQuery = rawQuery
	}
	return u.String(), nil
}

// MultipartFile encodes a single file part plus plain form fields into a
// multipart/form-data body. It returns the content type (with boundary) and
// the encoded body.
func MultipartFile(fieldName, fileName string, content []byte, fields map[string]string) (string, []byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		return "", nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", nil, fmt.Errorf("write form file: %w", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart: %w", err)
	}

	return mw.FormDataContentType(), buf.Bytes(), nil
}
