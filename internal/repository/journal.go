package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

type EventJournal interface {
	Record(ctx context.Context, event entity.Event) error
	ListBySession(ctx context.Context, sessionID string) ([]entity.Event, error)
}

type redisJournal struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventJournal - journal keeping each session's events in a Redis list
// that expires ttl after the last write.
func NewEventJournal(client *redis.Client, ttl time.Duration) EventJournal {
	return &redisJournal{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":events"
}

func (that *redisJournal) Record(ctx context.Context, event entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	key := sessionKey(event.SessionID)

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, key, eventJSON)
	if that.ttl > 0 {
		pipe.Expire(ctx, key, that.ttl)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	return nil
}

func (that *redisJournal) ListBySession(ctx context.Context, sessionID string) ([]entity.Event, error) {
	response, err := that.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]entity.Event, 0, len(response))
	for _, raw := range response {
		var event entity.Event
		if err = json.Unmarshal([]byte(raw), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

type nopJournal struct{}

// NewNopJournal - journal used when Redis is disabled; it keeps nothing.
func NewNopJournal() EventJournal {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, entity.Event) error { return nil }

func (nopJournal) ListBySession(context.Context, string) ([]entity.Event, error) {
	return nil, nil
}
