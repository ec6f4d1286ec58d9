package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"go.uber.org/zap"
)

// FeedbackService непрочитанные отзывы студентов
type FeedbackService struct {
	backend feedbackBackend
	unread  *listCache[models.Feedback]
}

type feedbackBackend interface {
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	MarkFeedbackRead(ctx context.Context, feedbackID string) error
	MarkAllFeedbackRead(ctx context.Context) error
}

func NewFeedbackService(backend feedbackBackend) *FeedbackService {
	return &FeedbackService{
		backend: backend,
		unread:  newListCache(func(feedback models.Feedback) string { return feedback.ID }),
	}
}

// Refresh перечитывает отзывы, оставляя только непрочитанные, новые первыми.
// Отзывы, отметка которых еще не подтверждена, в список не возвращаются.
func (fs *FeedbackService) Refresh(ctx context.Context) error {
	ticket := fs.unread.ticket()

	all, err := fs.backend.ListFeedback(ctx)
	if err != nil {
		logger.Log.Warn("failed to fetch feedback", zap.Error(err))
		return fmt.Errorf("ошибка получения отзывов: %w", err)
	}

	unread := make([]models.Feedback, 0, len(all))
	for _, feedback := range all {
		if !feedback.IsRead {
			unread = append(unread, feedback)
		}
	}

	sort.SliceStable(unread, func(i, j int) bool {
		return unread[i].CreatedAt.After(unread[j].CreatedAt.Time)
	})

	if !fs.unread.replace(unread, ticket) {
		logger.Log.Debug("feedback fetched before session end discarded")
	}

	return nil
}

// List возвращает непрочитанные отзывы, при первом обращении загружая их
func (fs *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	if _, loaded := fs.unread.snapshot(); !loaded {
		if err := fs.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	list, _ := fs.unread.snapshot()
	return list, nil
}

// MarkRead убирает отзыв из списка сразу; если бэкенд не принял изменение, список перечитывается
func (fs *FeedbackService) MarkRead(ctx context.Context, feedbackID string) error {
	fs.unread.edit(feedbackID, markedRead)

	err := fs.backend.MarkFeedbackRead(ctx, feedbackID)
	fs.unread.resolve(feedbackID, err == nil)

	if err != nil {
		logger.Log.Warn("failed to mark feedback as read", zap.String("feedbackID", feedbackID), zap.Error(err))

		if rerr := fs.Refresh(ctx); rerr != nil {
			logger.Log.Warn("failed to restore feedback list", zap.Error(rerr))
		}

		return fmt.Errorf("ошибка отметки отзыва %s: %w", feedbackID, err)
	}

	return nil
}

// MarkAllRead очищает список и перечитывает его при любом исходе: могли прийти новые отзывы
func (fs *FeedbackService) MarkAllRead(ctx context.Context) error {
	listed, _ := fs.unread.snapshot()
	for _, feedback := range listed {
		fs.unread.edit(feedback.ID, markedRead)
	}

	err := fs.backend.MarkAllFeedbackRead(ctx)
	for _, feedback := range listed {
		fs.unread.resolve(feedback.ID, err == nil)
	}

	if err != nil {
		logger.Log.Warn("failed to mark all feedback as read", zap.Error(err))
	}

	if rerr := fs.Refresh(ctx); rerr != nil && err == nil {
		return rerr
	}

	if err != nil {
		return fmt.Errorf("ошибка отметки всех отзывов: %w", err)
	}

	return nil
}

// Clear сбрасывает список при завершении сессии
func (fs *FeedbackService) Clear() {
	fs.unread.clear()
}

func markedRead(feedback models.Feedback) (models.Feedback, bool) {
	return feedback, false
}
