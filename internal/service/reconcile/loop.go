// Package reconcile periodically rebuilds the availability index for an operator session.
package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
)

// Loop перечитывает логи с фиксированным периодом и целиком заменяет текущий индекс
// Loop привязан к жизни операторской сессии: Start при входе, Stop при выходе
type Loop struct {
	source  Source
	period  time.Duration
	logger  Logger
	metrics Metrics

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	listeners map[int]Listener
	nextID    int
	current   *availability.Index
	lastErr   error
}

// NewLoop создает цикл. metrics может быть nil
func NewLoop(source Source, period time.Duration, logger Logger, metrics Metrics) *Loop {
	return &Loop{
		source:    source,
		period:    period,
		logger:    logger,
		metrics:   metrics,
		listeners: make(map[int]Listener),
	}
}

// Subscribe добавляет получателя перестроенных индексов. Возвращает функцию отписки
func (l *Loop) Subscribe(listener Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners[id] = listener

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// Start запускает цикл: первое обновление сразу, далее раз в period
// Повторный вызов на работающем цикле ничего не делает и возвращает false
func (l *Loop) Start(parent context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go l.run(ctx, done)
	return true
}

// Stop останавливает цикл и дожидается выхода горутины
// После возврата из Stop получатели больше не вызываются
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running true, пока цикл запущен
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Current последний успешно построенный индекс или nil
func (l *Loop) Current() *availability.Index {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// LastError ошибка последнего прохода (nil, если он был успешным)
func (l *Loop) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer func() {
		l.mu.Lock()
		// Цикл завершился из-за отмены родительского контекста, а не через Stop
		if l.done == done {
			l.cancel()
			l.cancel, l.done = nil, nil
		}
		l.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	l.logger.Info("Reconcile loop started (period=%s)", l.period)
	l.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Reconcile loop stopped")
			return
		case <-ticker.C:
			l.refresh(ctx)
		}
	}
}

// refresh один проход: чтение логов и полная замена индекса
// При ошибке предыдущий индекс сохраняется
func (l *Loop) refresh(ctx context.Context) {
	idx, err := l.source.Snapshot(ctx)
	if ctx.Err() != nil {
		return
	}

	if l.metrics != nil {
		if err != nil {
			l.metrics.ObserveReconcile(err, 0, 0)
		} else {
			l.metrics.ObserveReconcile(nil, idx.RequestCount(), idx.BookingCount())
		}
	}

	l.mu.Lock()
	l.lastErr = err
	if err != nil {
		l.mu.Unlock()
		l.logger.Warn("Reconcile loop: keeping previous index: %v", err)
		return
	}
	l.current = idx
	listeners := make([]Listener, 0, len(l.listeners))
	for _, fn := range l.listeners {
		listeners = append(listeners, fn)
	}
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(idx)
	}
}
