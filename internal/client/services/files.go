package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/netx"
)

type FileService struct {
	sender Sender
}

func NewFileService(s Sender) *FileService {
	return &FileService{sender: s}
}

// Upload posts content as the "file" part of a multipart form, together with
// the target folder.
func (f *FileService) Upload(ctx context.Context, fileName string, content []byte, folder string) (models.UploadedFile, error) {
	contentType, body, err := netx.MultipartFile("file", fileName, content, map[string]string{"folder": folder})
	if err != nil {
		return models.UploadedFile{}, err
	}

	var out models.UploadedFile
	req := gateway.Post(apiPath("/file/upload")).WithBody(contentType, body)
	if err := call(ctx, f.sender, req, &out); err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload %s: %w", fileName, err)
	}
	return out, nil
}
