package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/session"
)

// Gate текущее состояние сессий администраторов для всего процесса.
// Создается один раз в main и передается тем, кому нужна проверка сессии.
// Локальная копия меняется только обработчиком единственной подписки на
// изменения сессий; подписка освобождается в Close.
type Gate struct {
	store        Store
	tokens       *Tokens
	log          Logger
	timeProvider TimeProvider

	mu       sync.RWMutex
	sessions map[string]domain.Session
	revoked  map[string]time.Time // ID -> время истечения

	sub     *sessionStore.Subscription
	done    chan struct{}
	started bool
	closed  bool
}

func NewGate(store Store, tokens *Tokens, log Logger) *Gate {
	return &Gate{
		store:        store,
		tokens:       tokens,
		log:          log,
		timeProvider: &RealTimeProvider{},
		sessions:     make(map[string]domain.Session),
		revoked:      make(map[string]time.Time),
		done:         make(chan struct{}),
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (g *Gate) SetTimeProvider(tp TimeProvider) {
	g.timeProvider = tp
}

// Start подписывается на изменения сессий, загружает существующие сессии
// и запускает обработчик событий
func (g *Gate) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrGateClosed
	}
	if g.started {
		g.mu.Unlock()
		return nil
	}
	g.started = true
	g.mu.Unlock()

	// Подписываемся до загрузки, чтобы не пропустить изменения между ними
	sub, err := g.store.Subscribe(ctx, g.log)
	if err != nil {
		g.resetStarted()
		return fmt.Errorf("failed to subscribe to session changes: %w", err)
	}

	existing, err := g.store.List(ctx)
	if err != nil {
		_ = sub.Close()
		g.resetStarted()
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		_ = sub.Close()
		return ErrGateClosed
	}
	g.sub = sub
	for _, s := range existing {
		g.sessions[s.ID] = *s
	}
	g.mu.Unlock()

	g.log.Info("Session gate started: %d active session(s)", len(existing))

	go g.listen(sub)

	return nil
}

func (g *Gate) resetStarted() {
	g.mu.Lock()
	g.started = false
	g.mu.Unlock()
}

func (g *Gate) listen(sub *sessionStore.Subscription) {
	defer close(g.done)

	for event := range sub.Events() {
		g.apply(event)
	}
}

func (g *Gate) apply(event domain.SessionEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.timeProvider.Now()
	g.pruneLocked(now)

	switch event.Type {
	case domain.SessionSignedIn:
		g.sessions[event.Session.ID] = event.Session
		delete(g.revoked, event.Session.ID)
	case domain.SessionSignedOut:
		delete(g.sessions, event.Session.ID)
		g.revoked[event.Session.ID] = event.Session.ExpiresAt
	default:
		g.log.Warn("Session gate: unknown event type %q", event.Type)
	}
}

func (g *Gate) pruneLocked(now time.Time) {
	for id, s := range g.sessions {
		if s.IsExpired(now) {
			delete(g.sessions, id)
		}
	}
	for id, expiresAt := range g.revoked {
		if !now.Before(expiresAt) {
			delete(g.revoked, id)
		}
	}
}

// Current возвращает живую сессию, соответствующую токену
func (g *Gate) Current(ctx context.Context, token string) (*domain.Session, error) {
	id, err := g.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	now := g.timeProvider.Now()

	g.mu.RLock()
	_, revoked := g.revoked[id]
	cached, ok := g.sessions[id]
	g.mu.RUnlock()

	if revoked {
		return nil, ErrNoSession
	}
	if ok {
		if cached.IsExpired(now) {
			return nil, ErrNoSession
		}
		return &cached, nil
	}

	// Событие могло еще не дойти: проверяем хранилище
	sess, err := g.store.Get(ctx, id)
	if errors.Is(err, sessionStore.ErrSessionNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.IsExpired(now) {
		return nil, ErrNoSession
	}

	return sess, nil
}

// ActiveCount количество известных живых сессий
func (g *Gate) ActiveCount() int {
	now := g.timeProvider.Now()

	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, s := range g.sessions {
		if !s.IsExpired(now) {
			count++
		}
	}
	return count
}

// Close освобождает подписку и дожидается завершения обработчика
func (g *Gate) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	sub := g.sub
	g.mu.Unlock()

	if sub == nil {
		return nil
	}

	err := sub.Close()
	<-g.done
	return err
}
