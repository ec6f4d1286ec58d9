package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransitionInProgress  = errors.New("переход для заказа уже выполняется")
	ErrUnsupportedStatus     = errors.New("неподдерживаемый целевой статус")
	ErrTransitionFailed      = errors.New("переход статуса не выполнен")
	ErrTransitionSkipsStatus = errors.New("переход пропускает промежуточный статус")
)

// TransitionService переводит заказ в следующий статус: сразу локально, затем на бэкенде,
// после чего перечитывает очередь целиком.
type TransitionService struct {
	store      transitionStore
	backend    transitionBackend
	reconciler transitionReconciler
	notifier   transitionNotifier
	queue      transitionQueue
	journal    transitionJournal

	mu       sync.Mutex
	inFlight map[string]models.OrderStatus
}

type transitionStore interface {
	Get(id string) (models.Order, bool)
	ApplyLocalTransition(id string, status models.OrderStatus) (models.OrderStatus, bool)
	ResolveTransition(id string, confirmed bool)
}

type transitionBackend interface {
	MarkReady(ctx context.Context, orderID string) (*models.Order, error)
	MarkDelivered(ctx context.Context, orderID string) (*models.Order, error)
}

type transitionReconciler interface {
	Reconcile(ctx context.Context) error
}

type transitionNotifier interface {
	Push(level models.NotificationLevel, message string) models.Notification
}

type transitionQueue interface {
	Enqueue(job Job) error
}

type transitionJournal interface {
	CreateTransition(ctx context.Context, record models.TransitionRecord) error
}

type TransitionOption func(*TransitionService)

// WithJournal включает запись исходов переходов в журнал.
func WithJournal(journal transitionJournal) TransitionOption {
	return func(ts *TransitionService) {
		ts.journal = journal
	}
}

func NewTransitionService(
	store transitionStore,
	backend transitionBackend,
	reconciler transitionReconciler,
	notifier transitionNotifier,
	queue transitionQueue,
	opts ...TransitionOption,
) *TransitionService {
	ts := &TransitionService{
		store:      store,
		backend:    backend,
		reconciler: reconciler,
		notifier:   notifier,
		queue:      queue,
		inFlight:   map[string]models.OrderStatus{},
	}

	for _, opt := range opts {
		opt(ts)
	}

	return ts
}

// MarkReady переводит заказ в Ready и дожидается подтверждения.
func (ts *TransitionService) MarkReady(ctx context.Context, orderID string) error {
	return ts.transition(ctx, orderID, models.StatusReady)
}

// MarkDelivered переводит заказ в Delivered и дожидается подтверждения.
func (ts *TransitionService) MarkDelivered(ctx context.Context, orderID string) error {
	return ts.transition(ctx, orderID, models.StatusDelivered)
}

// Submit применяет переход локально и ставит подтверждение в очередь.
// Если очередь не принимает задание, локальное изменение откатывается.
func (ts *TransitionService) Submit(orderID string, target models.OrderStatus) error {
	previous, needed, err := ts.begin(orderID, target)
	if err != nil || !needed {
		return err
	}

	err = ts.queue.Enqueue(func(ctx context.Context) {
		_ = ts.confirm(ctx, orderID, previous, target)
	})
	if err != nil {
		ts.store.ResolveTransition(orderID, false)
		ts.release(orderID)

		logger.Log.Error("failed to enqueue transition", zap.String("orderID", orderID), zap.Error(err))
		return fmt.Errorf("не удалось поставить переход в очередь: %w", err)
	}

	return nil
}

func (ts *TransitionService) transition(ctx context.Context, orderID string, target models.OrderStatus) error {
	previous, needed, err := ts.begin(orderID, target)
	if err != nil || !needed {
		return err
	}

	return ts.confirm(ctx, orderID, previous, target)
}

// begin занимает заказ и применяет оптимистичный статус.
// needed == false, если заказ уже в целевом статусе или дальше либо такой же переход уже выполняется.
// Переход через статус отклоняется до любых изменений.
func (ts *TransitionService) begin(orderID string, target models.OrderStatus) (models.OrderStatus, bool, error) {
	if target != models.StatusReady && target != models.StatusDelivered {
		return "", false, fmt.Errorf("%w: %q", ErrUnsupportedStatus, target)
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if pending, busy := ts.inFlight[orderID]; busy {
		if pending.Rank() >= target.Rank() {
			return pending, false, nil
		}
		return "", false, ErrTransitionInProgress
	}

	order, ok := ts.store.Get(orderID)
	if ok && (order.Status.Terminal() || order.Status.Rank() >= target.Rank()) {
		logger.Log.Debug("order already reached status",
			zap.String("orderID", orderID),
			zap.String("status", string(order.Status)),
		)
		return order.Status, false, nil
	}

	// Неизвестный статус оставляем на решение бэкенда.
	if ok && order.Status.Known() && !order.Status.CanAdvanceTo(target) {
		return "", false, fmt.Errorf("%w: %s -> %s", ErrTransitionSkipsStatus, order.Status, target)
	}

	ts.inFlight[orderID] = target

	// Если заказа нет в снимке, решение остается за бэкендом.
	previous, _ := ts.store.ApplyLocalTransition(orderID, target)

	return previous, true, nil
}

func (ts *TransitionService) release(orderID string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	delete(ts.inFlight, orderID)
}

func (ts *TransitionService) confirm(ctx context.Context, orderID string, previous, target models.OrderStatus) error {
	var err error
	if target == models.StatusReady {
		_, err = ts.backend.MarkReady(ctx, orderID)
	} else {
		_, err = ts.backend.MarkDelivered(ctx, orderID)
	}

	ts.store.ResolveTransition(orderID, err == nil)
	ts.release(orderID)
	ts.record(ctx, orderID, previous, target, err)

	if err != nil {
		logger.Log.Warn("transition rejected",
			zap.String("orderID", orderID),
			zap.String("status", string(target)),
			zap.Error(err),
		)
		ts.notifier.Push(models.NotificationError, fmt.Sprintf("Заказ %s не переведен в статус %s: %v", orderID, target, err))
	} else {
		logger.Log.Info("transition confirmed", zap.String("orderID", orderID), zap.String("status", string(target)))
	}

	if rerr := ts.reconciler.Reconcile(ctx); rerr != nil && !errors.Is(rerr, ErrPollerStopped) {
		logger.Log.Warn("reconcile after transition failed", zap.String("orderID", orderID), zap.Error(rerr))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransitionFailed, err)
	}

	return nil
}

func (ts *TransitionService) record(ctx context.Context, orderID string, previous, target models.OrderStatus, err error) {
	if ts.journal == nil {
		return
	}

	record := models.TransitionRecord{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		From:      previous,
		To:        target,
		Outcome:   models.OutcomeConfirmed,
		CreatedAt: utils.RFC3339Date{Time: time.Now()},
	}
	if err != nil {
		record.Outcome = models.OutcomeRejected
		record.Error = err.Error()
	}

	if jerr := ts.journal.CreateTransition(ctx, record); jerr != nil {
		logger.Log.Error("failed to record transition", zap.String("orderID", orderID), zap.Error(jerr))
	}
}
