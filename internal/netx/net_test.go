package netx

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base, path, query string
		want              string
	}{
		{"http://api:8080", "/api/v1/auth", "", "http://api:8080/api/v1/auth"},
		{"http://api:8080/", "api/v1/books", "", "http://api:8080/api/v1/books"},
		{"http://api:8080/", "/api/v1/books", "page=1&size=10", "http://api:8080/api/v1/books?page=1&size=10"},
	}
	for _, tt := range tests {
		got, err := JoinURL(tt.base, tt.path, tt.query)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestJoinURL_Invalid(t *testing.T) {
	_, err := JoinURL("http://[::1", "/x", "")
	require.Error(t, err)
}

func TestMultipartFile(t *testing.T) {
	ct, body, err := MultipartFile("file", "cover.png", []byte("PNGDATA"), map[string]string{"folder": "book"})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Equal(t, []string{"book"}, form.Value["folder"])
	require.Len(t, form.File["file"], 1)
	fh := form.File["file"][0]
	require.Equal(t, "cover.png", fh.Filename)

	f, err := fh.Open()
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, []byte("PNGDATA"), data)
}
