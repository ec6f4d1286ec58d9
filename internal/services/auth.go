package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Renal37/canteen-admin/internal/backend"
	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/session"
	"go.uber.org/zap"
)

// Определение пользовательских ошибок
var (
	ErrCredentialsRequired = errors.New("необходимо указать email и пароль")
	ErrLoginRejected       = errors.New("бэкенд отклонил вход")
)

// AuthService ведет сессию администратора и связанные с ней фоновые опросы
type AuthService struct {
	backend  authBackend
	session  authSession
	notifier transitionNotifier
	pollers  []SessionPoller
	clearers []func()
}

type authBackend interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authSession interface {
	Begin(token string) error
	End(reason error) bool
	Info() models.SessionInfo
	OnEnd(listener func(reason error))
}

// SessionPoller опрос, живущий только пока активна сессия
type SessionPoller interface {
	Start(ctx context.Context) error
	Stop()
}

type AuthOption func(*AuthService)

// WithSessionPoller регистрирует опрос, запускаемый при входе и останавливаемый при завершении сессии
func WithSessionPoller(poller SessionPoller) AuthOption {
	return func(auth *AuthService) {
		auth.pollers = append(auth.pollers, poller)
	}
}

// WithSessionCleanup регистрирует сброс данных, принадлежащих сессии
func WithSessionCleanup(clear func()) AuthOption {
	return func(auth *AuthService) {
		auth.clearers = append(auth.clearers, clear)
	}
}

// NewAuthService создает новый экземпляр AuthService и подписывается на завершение сессии
func NewAuthService(backend authBackend, sess authSession, notifier transitionNotifier, opts ...AuthOption) *AuthService {
	auth := &AuthService{
		backend:  backend,
		session:  sess,
		notifier: notifier,
	}

	for _, opt := range opts {
		opt(auth)
	}

	sess.OnEnd(auth.onSessionEnd)

	return auth
}

// Login выполняет вход и запускает опросы сессии.
// Ошибка первого запроса данных не мешает входу: она логируется и выдается уведомлением.
func (auth *AuthService) Login(ctx context.Context, credentials models.Credentials) error {
	if credentials.Email == nil || credentials.Password == nil ||
		strings.TrimSpace(*credentials.Email) == "" || *credentials.Password == "" {
		return ErrCredentialsRequired
	}

	token, err := auth.backend.Login(ctx, strings.TrimSpace(*credentials.Email), *credentials.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", ErrLoginRejected, err)
		}
		return fmt.Errorf("ошибка входа: %w", err)
	}

	// Повторный вход начинает новую сессию с чистыми данными.
	auth.session.End(session.ErrLoggedOut)

	if err := auth.session.Begin(token); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginRejected, err)
	}

	logger.Log.Info("admin logged in")

	for _, poller := range auth.pollers {
		if err := poller.Start(ctx); err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				return fmt.Errorf("%w: %w", ErrLoginRejected, err)
			}

			auth.notifier.Push(models.NotificationError, fmt.Sprintf("Не удалось загрузить данные: %v", err))
		}
	}

	return nil
}

// Logout завершает сессию
func (auth *AuthService) Logout() {
	if auth.session.End(session.ErrLoggedOut) {
		logger.Log.Info("admin logged out")
	}
}

// Session возвращает состояние сессии
func (auth *AuthService) Session() models.SessionInfo {
	return auth.session.Info()
}

func (auth *AuthService) onSessionEnd(reason error) {
	for _, poller := range auth.pollers {
		poller.Stop()
	}

	for _, clear := range auth.clearers {
		clear()
	}

	if errors.Is(reason, session.ErrLoggedOut) {
		return
	}

	logger.Log.Warn("session ended", zap.Error(reason))
	auth.notifier.Push(models.NotificationError, "Сессия завершена, войдите снова")
}
