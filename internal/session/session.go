// Package session хранит учетные данные администратора на время работы консоли.
//
// Сессия начинается при входе, заканчивается при выходе или при первом ответе
// 401/403 от бэкенда. Подписчики OnEnd останавливают опросы и очищают кэши.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

var (
	ErrNoSession      = errors.New("сессия администратора не начата")
	ErrSessionExpired = errors.New("сессия администратора истекла")
	ErrLoggedOut      = errors.New("администратор вышел из системы")
	ErrEmptyToken     = errors.New("пустой токен авторизации")
)

// Session токен администратора с явным жизненным циклом.
type Session struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	listeners []func(reason error)
	now       func() time.Time
}

// New создает неактивную сессию.
func New() *Session {
	return &Session{now: time.Now}
}

// Begin сохраняет токен, полученный при входе.
// Если токен является JWT, из него читается срок действия (подпись не проверяется, это делает бэкенд).
func (s *Session) Begin(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	expiresAt := readExpiration(token)
	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		return ErrSessionExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = expiresAt

	return nil
}

// Token возвращает токен для заголовка Authorization.
// Истекший токен завершает сессию.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	token, expiresAt := s.token, s.expiresAt
	s.mu.RUnlock()

	if token == "" {
		return "", ErrNoSession
	}

	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		s.End(ErrSessionExpired)
		return "", ErrSessionExpired
	}

	return token, nil
}

// Active сообщает, есть ли у консоли действующий токен.
func (s *Session) Active() bool {
	_, err := s.Token()
	return err == nil
}

// Info описание сессии для UI.
func (s *Session) Info() models.SessionInfo {
	if !s.Active() {
		return models.SessionInfo{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	info := models.SessionInfo{Active: true}
	if !s.expiresAt.IsZero() {
		info.ExpiresAt = &utils.RFC3339Date{Time: s.expiresAt}
	}

	return info
}

// End очищает токен и уведомляет подписчиков. Повторный вызов ничего не делает.
// Возвращает true, если сессия действительно была завершена этим вызовом.
func (s *Session) End(reason error) bool {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return false
	}

	s.token = ""
	s.expiresAt = time.Time{}
	listeners := append([]func(error){}, s.listeners...)
	s.mu.Unlock()

	// Подписчики вызываются вне блокировки: они могут обращаться к сессии.
	for _, listener := range listeners {
		listener(reason)
	}

	return true
}

// OnEnd регистрирует обработчик завершения сессии.
func (s *Session) OnEnd(listener func(reason error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func readExpiration(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}
