package service

import (
	"context"
	"io"

	"campusdocs/files_backend/internal/model"
)

// ObjectStorage puts and deletes blobs in an external object store.
// Upload returns the publicly resolvable URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, body io.Reader, key, filename string) (string, error)
	Delete(ctx context.Context, url string) error
}

// FileUpload is one attachment pulled out of a multipart form.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

type UploadInput struct {
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	CategoryID  string `json:"category_id"`
}

type UpdateInput struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

type FileService interface {
	Upload(ctx context.Context, in UploadInput, upload *FileUpload) (*model.File, error)
	Update(ctx context.Context, in UpdateInput, upload *FileUpload) error
	Delete(ctx context.Context, userID, fileID string) error
	GetByID(ctx context.Context, id string) (*model.File, error)
	GetByUserID(ctx context.Context, userID string) ([]model.File, error)
	GetAll(ctx context.Context) ([]model.File, error)
}
