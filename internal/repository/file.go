package repository

import (
	"errors"

	"campusdocs/files_backend/internal/model"
	"campusdocs/files_backend/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// FileRepository is a thin passthrough to the database. Not-found is a valid
// result (nil record, no error); every real failure comes back wrapped in
// apperrors.PersistenceError. Reads join the associated category.
type FileRepository interface {
	Create(file *model.File) (*model.File, error)
	FindByID(id string) (*model.File, error)
	FindByUserID(userID string) ([]model.File, error)
	FindAll() ([]model.File, error)
	Update(id string, fields map[string]any) (*model.File, error)
	Delete(id string) (*model.File, error)
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *model.File) (*model.File, error) {
	if err := r.db.Create(file).Error; err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	return r.FindByID(file.ID)
}

func (r *fileRepository) FindByID(id string) (*model.File, error) {
	var file model.File
	err := r.db.Preload("Category").Where("id = ?", id).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	return &file, nil
}

func (r *fileRepository) FindByUserID(userID string) ([]model.File, error) {
	var files []model.File
	err := r.db.Preload("Category").Where("user_id = ?", userID).Find(&files).Error
	if err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	if files == nil {
		files = []model.File{}
	}
	return files, nil
}

func (r *fileRepository) FindAll() ([]model.File, error) {
	var files []model.File
	if err := r.db.Preload("Category").Find(&files).Error; err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	if files == nil {
		files = []model.File{}
	}
	return files, nil
}

func (r *fileRepository) Update(id string, fields map[string]any) (*model.File, error) {
	err := r.db.Model(&model.File{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	return r.FindByID(id)
}

func (r *fileRepository) Delete(id string) (*model.File, error) {
	file, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}
	if err := r.db.Delete(&model.File{}, "id = ?", id).Error; err != nil {
		return nil, &apperrors.PersistenceError{Err: err}
	}
	return file, nil
}
