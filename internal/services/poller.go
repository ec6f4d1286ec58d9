package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Renal37/canteen-admin/internal/backend"
	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrPollerStopped = errors.New("опрос остановлен")

// PollerConfig описывает опрашиваемый ресурс.
type PollerConfig[T any] struct {
	Name     string
	Interval time.Duration
	Fetch    func(ctx context.Context) (T, error)
	Apply    func(value T)
	// Fail вызывается при неудачном запросе, если его результат еще актуален. Необязателен.
	Fail func(err error)
}

// Poller периодически перечитывает ресурс и применяет успешный результат.
// Одновременно выполняется не больше одного запроса: тик во время запроса пропускается,
// параллельные Refresh присоединяются к уже идущему запросу.
// Результат применяется, только если с его начала опрос не был остановлен
// и не был применен результат более позднего запроса.
type Poller[T any] struct {
	cfg   PollerConfig[T]
	group singleflight.Group

	inFlight atomic.Int32
	seq      atomic.Uint64

	mu        sync.Mutex
	running   bool
	epoch     uint64
	ctx       context.Context
	cancel    context.CancelFunc
	committed uint64
	state     models.SyncState
}

func NewPoller[T any](cfg PollerConfig[T]) *Poller[T] {
	return &Poller[T]{cfg: cfg}
}

// Start запускает опрос и синхронно выполняет первый запрос.
// Ошибка первого запроса возвращается вызывающему; опрос при этом продолжается,
// кроме случая ошибки авторизации, после которой он останавливается.
func (p *Poller[T]) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}

	p.epoch++
	p.running = true
	p.ctx, p.cancel = context.WithCancel(context.WithoutCancel(ctx))
	p.state = models.SyncState{Running: true}
	p.group.Forget(p.cfg.Name)

	loopCtx := p.ctx
	p.mu.Unlock()

	err := p.Refresh(ctx)
	if err != nil {
		logger.Log.Error("initial fetch failed", zap.String("resource", p.cfg.Name), zap.Error(err))

		if errors.Is(err, backend.ErrUnauthorized) {
			p.Stop()
			return err
		}
	}

	go p.loop(loopCtx)

	return err
}

// Stop останавливает опрос. Результаты уже идущих запросов будут отброшены.
// Stop не ждет завершения запросов и может вызываться из них.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.running = false
	p.epoch++
	p.state.Running = false
	p.cancel()
	p.group.Forget(p.cfg.Name)

	logger.Log.Debug("poller stopped", zap.String("resource", p.cfg.Name))
}

// Refresh выполняет запрос вне расписания или присоединяется к уже идущему.
func (p *Poller[T]) Refresh(ctx context.Context) error {
	return p.run(ctx)
}

// Reconcile выполняет запрос, начатый строго после вызова.
// Используется после изменения данных на бэкенде, когда идущий запрос мог видеть старое состояние.
func (p *Poller[T]) Reconcile(ctx context.Context) error {
	p.group.Forget(p.cfg.Name)
	return p.run(ctx)
}

// Supersede применяет значение, полученное в обход опроса, и отбрасывает результаты идущих запросов.
func (p *Poller[T]) Supersede(value T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.committed = p.seq.Load()
	p.cfg.Apply(value)
	p.state.Loaded = true
	p.state.Stale = false
	p.state.LastError = ""
	p.state.LastSuccess = time.Now()
}

// State возвращает текущее состояние синхронизации.
func (p *Poller[T]) State() models.SyncState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *Poller[T]) loop(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.inFlight.Load() > 0 {
				logger.Log.Debug("previous fetch is still in flight, tick skipped", zap.String("resource", p.cfg.Name))
				continue
			}

			if err := p.run(ctx); err != nil {
				if errors.Is(err, backend.ErrUnauthorized) {
					return
				}
				if ctx.Err() != nil {
					return
				}
			}
		}
	}
}

func (p *Poller[T]) run(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return ErrPollerStopped
	}
	epoch := p.epoch
	fetchCtx := p.ctx
	p.mu.Unlock()

	result := p.group.DoChan(p.cfg.Name, func() (any, error) {
		p.inFlight.Add(1)
		defer p.inFlight.Add(-1)

		seq := p.seq.Add(1)
		value, err := p.cfg.Fetch(fetchCtx)
		p.commit(epoch, seq, value, err)

		return nil, err
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller[T]) commit(epoch, seq uint64, value T, err error) {
	p.mu.Lock()

	if !p.running || epoch != p.epoch {
		p.mu.Unlock()
		logger.Log.Debug("fetch result discarded after stop", zap.String("resource", p.cfg.Name))
		return
	}

	if seq <= p.committed {
		p.mu.Unlock()
		logger.Log.Debug("outdated fetch result discarded", zap.String("resource", p.cfg.Name), zap.Uint64("seq", seq))
		return
	}
	p.committed = seq

	if err == nil {
		p.cfg.Apply(value)
		p.state.Loaded = true
		p.state.Stale = false
		p.state.LastError = ""
		p.state.LastSuccess = time.Now()
		p.mu.Unlock()

		logger.Log.Debug("fetch applied", zap.String("resource", p.cfg.Name), zap.Uint64("seq", seq))
		return
	}

	p.state.Stale = true
	p.state.LastError = err.Error()
	fail := p.cfg.Fail
	p.mu.Unlock()

	logger.Log.Warn("fetch failed, keeping last known data", zap.String("resource", p.cfg.Name), zap.Error(err))

	if errors.Is(err, backend.ErrUnauthorized) {
		p.Stop()
	}

	if fail != nil {
		fail(err)
	}
}
