package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"campusdocs/files_backend/internal/pkg/apperrors"
	"campusdocs/files_backend/internal/pkg/httputils"
	"campusdocs/files_backend/internal/service"

	"github.com/gorilla/mux"
)

const maxUploadSize = 32 << 20

var allowedRoles = map[string]struct{}{
	"ADMINISTRATOR": {},
	"PROFESSOR":     {},
}

func roleAllowed(role string) bool {
	_, ok := allowedRoles[role]
	return ok
}

var errMethodNotAllowed = apperrors.NewVerification(http.StatusMethodNotAllowed, "Request method not allowed.")

type FileHandler struct {
	fileService service.FileService
}

func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/files", h.getFileByID).Methods("GET", "OPTIONS").Queries("file_id", "{file_id}")
	router.HandleFunc("/files", h.getFilesByUser).Methods("GET", "OPTIONS").Queries("user_id", "{user_id}")
	router.HandleFunc("/files", h.getAllFiles).Methods("GET", "OPTIONS")
	router.HandleFunc("/files", h.uploadFile).Methods("POST", "OPTIONS")
	router.HandleFunc("/files", h.updateFile).Methods("PUT", "OPTIONS")
	router.HandleFunc("/files", h.deleteFile).Methods("DELETE", "OPTIONS")
}

// fileMetadata is the JSON blob carried in the multipart "file" value field.
type fileMetadata struct {
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	CategoryID  string `json:"category_id"`
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// openUpload opens the first attachment of the "file" field, if any.
func openUpload(headers []*multipart.FileHeader) (*service.FileUpload, func(), error) {
	if len(headers) == 0 {
		return nil, func() {}, nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return nil, func() {}, err
	}

	upload := &service.FileUpload{
		Filename: headers[0].Filename,
		Content:  f,
	}
	return upload, func() { f.Close() }, nil
}

// @Summary Upload file
// @Description Upload a document and create its file record
// @ID upload-file
// @Accept mpfd
// @Produce json
// @Param file formData file true "Document"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [post]
func (h *FileHandler) uploadFile(w http.ResponseWriter, r *http.Request) {
	data, err := h.upload(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) upload(r *http.Request) (any, error) {
	if r.Method != http.MethodPost {
		return nil, errMethodNotAllowed
	}

	if !isMultipart(r) {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Body type must be form-data.")
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	if len(r.MultipartForm.File["file"]) == 0 {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "File must be included.")
	}

	values := r.MultipartForm.Value["file"]
	var meta fileMetadata
	if len(values) == 0 || json.Unmarshal([]byte(values[0]), &meta) != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error parsing data.")
	}

	if meta.Description == "" || meta.UserID == "" || meta.CategoryID == "" {
		return nil, apperrors.NewVerification(http.StatusBadRequest,
			"Description, user_id and category_id from the file, must be included.")
	}

	upload, closeUpload, err := openUpload(r.MultipartForm.File["file"])
	if err != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error uploading file.")
	}
	defer closeUpload()

	in := service.UploadInput{
		Description: meta.Description,
		UserID:      meta.UserID,
		CategoryID:  meta.CategoryID,
	}

	return h.fileService.Upload(r.Context(), in, upload)
}

// @Summary Update file
// @Description Replace the document and/or update fields of the user's file record
// @ID update-file
// @Accept mpfd
// @Produce json
// @Param file formData file false "Replacement document"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [put]
func (h *FileHandler) updateFile(w http.ResponseWriter, r *http.Request) {
	data, err := h.update(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) update(r *http.Request) (any, error) {
	if r.Method != http.MethodPut {
		return nil, errMethodNotAllowed
	}

	if !isMultipart(r) {
		return nil, apperrors.NewVerification(http.StatusBadRequest,
			"Request body not allowed, it's needed a form-data.")
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	values := r.MultipartForm.Value["file"]
	fileHeaders := r.MultipartForm.File["file"]

	if len(values) == 0 && len(fileHeaders) == 0 {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Server did not receive any elements.")
	}

	var meta fileMetadata
	if len(values) == 0 || json.Unmarshal([]byte(values[0]), &meta) != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error parsing form-data JSON.")
	}

	if meta.UserID == "" {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "UserID must be included.")
	}

	upload, closeUpload, err := openUpload(fileHeaders)
	if err != nil {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Error uploading file.")
	}
	defer closeUpload()

	in := service.UpdateInput{
		UserID:      meta.UserID,
		Description: meta.Description,
		CategoryID:  meta.CategoryID,
	}

	if err := h.fileService.Update(r.Context(), in, upload); err != nil {
		return nil, err
	}

	return fmt.Sprintf("Update successful of file userID: %s", meta.UserID), nil
}

// @Summary Delete file
// @Description Delete the user's file and its record
// @ID delete-file
// @Produce json
// @Param user_id query string true "Owner ID"
// @Param file_id query string true "File ID"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [delete]
func (h *FileHandler) deleteFile(w http.ResponseWriter, r *http.Request) {
	data, err := h.delete(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) delete(r *http.Request) (any, error) {
	if r.Method != http.MethodDelete {
		return nil, errMethodNotAllowed
	}

	userID := r.URL.Query().Get("user_id")
	fileID := r.URL.Query().Get("file_id")

	if userID == "" || fileID == "" {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "UserID and FileID are required.")
	}

	if err := h.fileService.Delete(r.Context(), userID, fileID); err != nil {
		return nil, err
	}

	return fmt.Sprintf("File id: %s, successfully deleted.", fileID), nil
}

// @Summary Get file
// @Description Get one file record by id
// @ID get-file
// @Produce json
// @Param file_id query string true "File ID"
// @Param role query string true "Caller role"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 404 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [get]
func (h *FileHandler) getFileByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.getByID(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) getByID(r *http.Request) (any, error) {
	if r.Method != http.MethodGet {
		return nil, errMethodNotAllowed
	}

	if !roleAllowed(r.URL.Query().Get("role")) {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Access not allowed.")
	}

	fileID := r.URL.Query().Get("file_id")
	if fileID == "" {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "File ID is required.")
	}

	file, err := h.fileService.GetByID(r.Context(), fileID)
	if err != nil {
		return nil, err
	}

	if file == nil || file.URL == "" {
		return nil, apperrors.NewVerification(http.StatusNotFound, "File not found.")
	}

	return file, nil
}

// @Summary Get files of user
// @Description Get all file records owned by a user
// @ID get-files-by-user
// @Produce json
// @Param user_id query string true "Owner ID"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 404 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [get]
func (h *FileHandler) getFilesByUser(w http.ResponseWriter, r *http.Request) {
	data, err := h.getByUser(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) getByUser(r *http.Request) (any, error) {
	if r.Method != http.MethodGet {
		return nil, errMethodNotAllowed
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "UserID is required.")
	}

	files, err := h.fileService.GetByUserID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, apperrors.NewVerification(http.StatusNotFound, "Files not found.")
	}

	return files, nil
}

// @Summary Get all files
// @Description Get every file record
// @ID get-all-files
// @Produce json
// @Param role query string true "Caller role"
// @Success 200 {object} httputils.Response
// @Failure 400 {object} httputils.Response
// @Failure 405 {object} httputils.Response
// @Router /files [get]
func (h *FileHandler) getAllFiles(w http.ResponseWriter, r *http.Request) {
	data, err := h.getAll(r)
	if err != nil {
		httputils.ResponseError(w, err)
		return
	}
	httputils.ResponseData(w, http.StatusOK, data)
}

func (h *FileHandler) getAll(r *http.Request) (any, error) {
	if r.Method != http.MethodGet {
		return nil, errMethodNotAllowed
	}

	if !roleAllowed(r.URL.Query().Get("role")) {
		return nil, apperrors.NewVerification(http.StatusBadRequest, "Access not allowed.")
	}

	return h.fileService.GetAll(r.Context())
}
