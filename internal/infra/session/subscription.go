package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Subscription подписка на события изменения сессий
type Subscription struct {
	pubsub *redis.PubSub
	events chan domain.SessionEvent
	done   chan struct{}
	once   sync.Once
}

// Subscribe подписывается на канал событий и дожидается подтверждения подписки
func (s *Store) Subscribe(ctx context.Context, log Logger) (*Subscription, error) {
	pubsub := s.client.Subscribe(ctx, s.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: Subscribe: %v", ErrRedis, err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan domain.SessionEvent),
		done:   make(chan struct{}),
	}
	go sub.forward(log)

	return sub, nil
}

func (sub *Subscription) forward(log Logger) {
	defer close(sub.events)

	for msg := range sub.pubsub.Channel() {
		var event domain.SessionEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Warn("Session events: skip malformed message: %v", err)
			continue
		}
		select {
		case sub.events <- event:
		case <-sub.done:
			return
		}
	}
}

// Events канал событий; закрывается после Close
func (sub *Subscription) Events() <-chan domain.SessionEvent {
	return sub.events
}

// Close освобождает подписку
func (sub *Subscription) Close() error {
	var err error
	sub.once.Do(func() {
		close(sub.done)
		err = sub.pubsub.Close()
	})
	return err
}
