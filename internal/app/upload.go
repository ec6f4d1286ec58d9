package router

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/Renal37/canteen-admin/internal/models"
)

// Изображения блюд и баннеров.
const maxUploadSize = 10 << 20

// parseMultipart разбирает multipart/form-data. При ошибке ответ уже записан.
func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		http.Error(w, "Тип контента не является multipart/form-data", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, fmt.Sprintf("Ошибка при разборе формы: %s", err.Error()), http.StatusBadRequest)
		return false
	}

	return true
}

// formImage возвращает файл из поля image или nil, если файл не передан.
func formImage(r *http.Request) (*models.Upload, func(), error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return &models.Upload{Filename: header.Filename, Content: file}, func() { _ = file.Close() }, nil
}
