package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const scanBatchSize = 100

// Store хранит сессии администраторов в Redis и публикует их изменения в канал
type Store struct {
	client  *redis.Client
	prefix  string
	channel string
}

// NewStore создает хранилище. prefix используется для ключей, channel для событий
func NewStore(client *redis.Client, prefix, channel string) *Store {
	return &Store{client: client, prefix: prefix, channel: channel}
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

// Save сохраняет сессию с TTL до ее истечения и публикует событие входа
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: Save - session %s", ErrExpired, sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrMarshal, err)
	}

	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrRedis, err)
	}

	return s.publish(ctx, domain.SessionEvent{Type: domain.SessionSignedIn, Session: *sess})
}

// Get получает сессию по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrRedis, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrUnmarshal, err)
	}

	return &sess, nil
}

// List возвращает все живые сессии
func (s *Store) List(ctx context.Context) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0)

	iter := s.client.Scan(ctx, 0, s.prefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		id := iter.Val()[len(s.prefix):]
		sess, err := s.Get(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			// истекла между SCAN и GET
			continue
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - scan: %v", ErrRedis, err)
	}

	return sessions, nil
}

// Delete удаляет сессию и публикует событие выхода
func (s *Store) Delete(ctx context.Context, sess *domain.Session) error {
	if err := s.client.Del(ctx, s.key(sess.ID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrRedis, err)
	}

	return s.publish(ctx, domain.SessionEvent{Type: domain.SessionSignedOut, Session: *sess})
}

// Ping проверяет соединение с Redis
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) publish(ctx context.Context, event domain.SessionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: publish: %v", ErrMarshal, err)
	}
	if err := s.client.Publish(ctx, s.channel, data).Err(); err != nil {
		return fmt.Errorf("%w: publish: %v", ErrRedis, err)
	}
	return nil
}
