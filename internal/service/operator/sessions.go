// Package operator manages operator sessions and the reconcile loop bound to each of them.
package operator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/reconcile"
)

// View последний индекс, доставленный циклом сессии
type View struct {
	Index       *availability.Index
	RefreshedAt time.Time
}

type session struct {
	id       string
	loop     *reconcile.Loop
	lastSeen time.Time

	mu   sync.RWMutex
	view *View
}

func (s *session) push(idx *availability.Index, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = &View{Index: idx, RefreshedAt: at}
}

func (s *session) current() *View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Manager хранит сессии оператора
// Каждая сессия запускает свой цикл обновления при входе и останавливает его при выходе
type Manager struct {
	passwordHash []byte
	ttl          time.Duration
	source       reconcile.Source
	period       time.Duration
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager создает менеджер сессий. Пустой passwordHash отключает вход
func NewManager(
	passwordHash string,
	ttl time.Duration,
	source reconcile.Source,
	period time.Duration,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		source:       source,
		period:       period,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		sessions:     make(map[string]*session),
	}
}

// Login проверяет пароль и открывает сессию оператора
func (m *Manager) Login(password string) (string, error) {
	if len(m.passwordHash) == 0 {
		m.logger.Warn("Login: operator password hash is not configured")
		return "", ErrLoginDisabled
	}

	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		m.logger.Warn("Login: invalid operator password")
		return "", ErrInvalidCredentials
	}

	s := &session{
		id:       uuid.NewString(),
		lastSeen: m.timeProvider.Now(),
	}
	s.loop = reconcile.NewLoop(m.source, m.period, m.logger, m.metrics)
	s.loop.Subscribe(func(idx *availability.Index) {
		s.push(idx, m.timeProvider.Now())
	})

	m.mu.Lock()
	if m.ctx.Err() != nil {
		m.mu.Unlock()
		m.logger.Warn("Login: session manager is shut down")
		return "", ErrManagerClosed
	}
	m.sessions[s.id] = s
	m.reportLocked()
	m.mu.Unlock()

	s.loop.Start(m.ctx)

	m.logger.Info("Login: operator session %s opened", s.id)
	return s.id, nil
}

// Logout закрывает сессию и немедленно останавливает её цикл
func (m *Manager) Logout(sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
		m.reportLocked()
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.loop.Stop()
	m.logger.Info("Logout: operator session %s closed", sessionID)
	return nil
}

// IsOperator true для живой сессии; продлевает её время жизни
func (m *Manager) IsOperator(sessionID string) bool {
	_, err := m.touch(sessionID)
	return err == nil
}

// View последний индекс, построенный циклом сессии
func (m *Manager) View(sessionID string) (*View, error) {
	s, err := m.touch(sessionID)
	if err != nil {
		return nil, err
	}

	view := s.current()
	if view == nil {
		return nil, ErrViewNotReady
	}
	return view, nil
}

// Active количество открытых сессий
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep закрывает сессии, неактивные дольше ttl
func (m *Manager) Sweep() int {
	now := m.timeProvider.Now()

	m.mu.Lock()
	expired := make([]*session, 0)
	for id, s := range m.sessions {
		if m.expired(s, now) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	if len(expired) > 0 {
		m.reportLocked()
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.loop.Stop()
		m.logger.Info("Sweep: operator session %s expired", s.id)
	}
	return len(expired)
}

// RunJanitor периодически вызывает Sweep до отмены ctx
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Shutdown останавливает циклы всех сессий
func (m *Manager) Shutdown() {
	m.mu.Lock()
	// отмена под мьютексом: Login не успеет зарегистрировать сессию после неё
	m.cancel()
	sessions := make([]*session, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.reportLocked()
	m.mu.Unlock()

	for _, s := range sessions {
		s.loop.Stop()
	}
	m.logger.Info("Shutdown: %d operator sessions closed", len(sessions))
}

func (m *Manager) touch(sessionID string) (*session, error) {
	now := m.timeProvider.Now()

	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if m.expired(s, now) {
		delete(m.sessions, sessionID)
		m.reportLocked()
		m.mu.Unlock()
		s.loop.Stop()
		m.logger.Info("Operator session %s expired", sessionID)
		return nil, ErrSessionNotFound
	}
	s.lastSeen = now
	m.mu.Unlock()

	return s, nil
}

func (m *Manager) expired(s *session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.lastSeen) > m.ttl
}

func (m *Manager) reportLocked() {
	if m.metrics != nil {
		m.metrics.SetOperatorSessions(len(m.sessions))
	}
}
