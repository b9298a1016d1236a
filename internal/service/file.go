package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campusdocs/files_backend/internal/model"
	"campusdocs/files_backend/internal/pkg/apperrors"
	"campusdocs/files_backend/internal/repository"
)

type fileService struct {
	fileRepo repository.FileRepository
	storage  ObjectStorage
}

func NewFileService(fileRepo repository.FileRepository, storage ObjectStorage) FileService {
	return &fileService{fileRepo: fileRepo, storage: storage}
}

// storageKey builds the object key for a user's upload. The original
// filename is not part of the key; the extension is fixed.
func storageKey(userID string) string {
	return fmt.Sprintf("%s_%d.pdf", userID, time.Now().UnixMilli())
}

func (s *fileService) Upload(ctx context.Context, in UploadInput, upload *FileUpload) (*model.File, error) {
	existing, err := s.fileRepo.FindByUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "User already have a file uploaded.")
	}

	location, err := s.storage.Upload(ctx, upload.Content, storageKey(in.UserID), upload.Filename)
	if err != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error uploading file.")
	}

	file := &model.File{
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		URL:         location,
	}

	created, err := s.fileRepo.Create(file)
	if err != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error creating register in database.")
	}

	return created, nil
}

func (s *fileService) Update(ctx context.Context, in UpdateInput, upload *FileUpload) error {
	files, err := s.fileRepo.FindByUserID(in.UserID)
	if err != nil {
		return err
	}

	var location string
	if upload != nil {
		location, err = s.storage.Upload(ctx, upload.Content, storageKey(in.UserID), upload.Filename)
		if err != nil {
			return apperrors.NewVerification(http.StatusBadRequest, "Error uploading file.")
		}
	}

	if in.Description == "" && in.CategoryID == "" && location == "" {
		// Nothing to change; reported as success anyway.
		return nil
	}

	if len(files) == 0 {
		return apperrors.NewVerification(http.StatusBadRequest, "Error uploading file data.")
	}

	fields := map[string]any{}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.CategoryID != "" {
		fields["category_id"] = in.CategoryID
	}
	if location != "" {
		fields["url"] = location
	}

	if _, err := s.fileRepo.Update(files[0].ID, fields); err != nil {
		return apperrors.NewVerification(http.StatusBadRequest, "Error uploading file data.")
	}

	return nil
}

// Delete removes the blob first and the record second. If the record
// delete fails after the blob delete succeeded there is no rollback; the
// record stays and points at a gone object. If the blob delete fails the
// record is left untouched.
func (s *fileService) Delete(ctx context.Context, userID, fileID string) error {
	files, err := s.fileRepo.FindByUserID(userID)
	if err != nil {
		return err
	}

	if len(files) == 0 || files[0].ID != fileID {
		return apperrors.NewVerification(http.StatusBadRequest, "File not from user.")
	}

	if err := s.storage.Delete(ctx, files[0].URL); err != nil {
		return apperrors.NewVerification(http.StatusBadRequest, "Error deleting file.")
	}

	if _, err := s.fileRepo.Delete(fileID); err != nil {
		return apperrors.NewVerification(http.StatusBadRequest, "Error deleting file on database.")
	}

	return nil
}

func (s *fileService) GetByID(ctx context.Context, id string) (*model.File, error) {
	return s.fileRepo.FindByID(id)
}

func (s *fileService) GetByUserID(ctx context.Context, userID string) ([]model.File, error) {
	return s.fileRepo.FindByUserID(userID)
}

func (s *fileService) GetAll(ctx context.Context) ([]model.File, error) {
	return s.fileRepo.FindAll()
}
