package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Renal37/canteen-admin/internal/models"
	mock_models "github.com/Renal37/canteen-admin/internal/models/mocks"
)

func TestJSONMiddleware(t *testing.T) {
	handler := JSONMiddleware[models.Credentials](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := GetParsedJSONData[models.Credentials](w, r)
		if !ok {
			return
		}
		EncodeJSONResponseWithStatus(w, http.StatusCreated, data)
	}))

	testCases := []struct {
		testName        string
		contentType     string
		body            string
		expectedCode    int
		expectedMessage string
	}{
		{
			testName:        "Должен отклонить запрос без application/json",
			contentType:     "text/plain",
			body:            `{}`,
			expectedCode:    http.StatusUnsupportedMediaType,
			expectedMessage: "Тип контента не является application/json\n",
		},
		{
			testName:        "Должен отклонить некорректный JSON",
			contentType:     "application/json",
			body:            `{"email":`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Ошибка при разборе данных JSON: unexpected end of JSON input\n",
		},
		{
			testName:        "Должен отклонить слишком большое тело",
			contentType:     "application/json",
			body:            `"` + strings.Repeat("a", maxJSONBodySize) + `"`,
			expectedCode:    http.StatusRequestEntityTooLarge,
			expectedMessage: "Тело запроса слишком большое\n",
		},
		{
			testName:        "Должен принять JSON с указанием кодировки",
			contentType:     "application/json; charset=utf-8",
			body:            `{"email":"admin@college.in","password":"secret"}`,
			expectedCode:    http.StatusCreated,
			expectedMessage: `{"email":"admin@college.in","password":"secret"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Equal(t, tc.expectedMessage, rec.Body.String())
		})
	}
}

func TestGetParsedJSONData(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.Handler
		expectedCode int
		expectedBody string
	}{
		{
			name: "Без JSONMiddleware данных нет",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, ok := GetParsedJSONData[models.Credentials](w, r)
				assert.False(t, ok)
			}),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Не удалось извлечь данные из контекста\n",
		},
		{
			name: "Другой тип в контексте не подходит",
			handler: JSONMiddleware[models.Credentials](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, ok := GetParsedJSONData[models.Feedback](w, r)
				assert.False(t, ok)
			})),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Не удалось извлечь данные из контекста\n",
		},
		{
			name: "Данные JSONMiddleware доступны",
			handler: JSONMiddleware[models.Credentials](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, ok := GetParsedJSONData[models.Credentials](w, r)
				assert.True(t, ok)
				if assert.NotNil(t, data.Email) {
					assert.Equal(t, "admin@college.in", *data.Email)
				}
				w.WriteHeader(http.StatusNoContent)
			})),
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, LoginPath, strings.NewReader(`{"email":"admin@college.in","password":"secret"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := ServiceInjectorMiddleware(Services{Auth: authServiceMock})(
		AuthMiddleware().WithExcludedPaths(LoginPath).Middleware(next),
	)

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("Исключенный путь не проверяет сессию", func(t *testing.T) {
		assert.Equal(t, http.StatusTeapot, serve(LoginPath).Code)
	})

	t.Run("Без сессии отправляет на вход", func(t *testing.T) {
		authServiceMock.EXPECT().Session().Return(models.SessionInfo{})

		rec := serve("/admin/orders")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	})

	t.Run("С активной сессией пропускает запрос", func(t *testing.T) {
		authServiceMock.EXPECT().Session().Return(models.SessionInfo{Active: true})

		assert.Equal(t, http.StatusTeapot, serve("/admin/orders").Code)
	})
}

func TestLookupServiceFromContext(t *testing.T) {
	var found bool

	handler := ServiceInjectorMiddleware(Services{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = LookupServiceFromContext[models.JournalService](r, JournalServiceKey)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/journal", nil))

	assert.False(t, found)
}
