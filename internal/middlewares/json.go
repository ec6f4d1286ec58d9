package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// Тела запросов консоли (вход администратора) маленькие.
const maxJSONBodySize = 1 << 20

type jsonBodyKeyType struct{}

// jsonBodyKey ключ контекста, под которым лежит разобранное тело запроса.
var jsonBodyKey jsonBodyKeyType

// ModelParameter допускает как одиночные значения, так и срезы значений.
type ModelParameter interface {
	interface{} | []interface{}
}

// JSONMiddleware разбирает тело application/json в Model и кладет результат в контекст запроса.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// charset и другие параметры типа допускаются.
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			http.Error(w, "Тип контента не является application/json", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "Тело запроса слишком большое", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, fmt.Sprintf("Ошибка чтения из тела запроса: %s", err.Error()), http.StatusBadRequest)
			return
		}

		var parsed Model
		if err := json.Unmarshal(body, &parsed); err != nil {
			http.Error(w, fmt.Sprintf("Ошибка при разборе данных JSON: %s", err.Error()), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), jsonBodyKey, parsed)))
	})
}

// GetParsedJSONData достает тело, разобранное JSONMiddleware.
// Если данных нет, ответ 500 уже записан и возвращается false.
func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) (Model, bool) {
	parsed, ok := r.Context().Value(jsonBodyKey).(Model)
	if !ok {
		http.Error(w, "Не удалось извлечь данные из контекста", http.StatusInternalServerError)
	}

	return parsed, ok
}

// EncodeJSONResponse отвечает 200 с data в JSON.
func EncodeJSONResponse[Model any](w http.ResponseWriter, data Model) {
	EncodeJSONResponseWithStatus(w, http.StatusOK, data)
}

func EncodeJSONResponseWithStatus[Model any](w http.ResponseWriter, status int, data Model) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка при кодировании JSON-ответа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
