// Package engagement keeps per-contact interaction history in Redis.
package engagement

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"directory_backend/internal/directory"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "engagement:contact:"
	fieldCount = "count"
	fieldLast  = "last"
)

// recordScript increments the counter and only moves the last-seen timestamp forward,
// so out-of-order writes never rewind it.
var recordScript = redis.NewScript(`
local count = redis.call('HINCRBY', KEYS[1], 'count', 1)
local last = tonumber(redis.call('HGET', KEYS[1], 'last') or '0')
if tonumber(ARGV[1]) > last then
	redis.call('HSET', KEYS[1], 'last', ARGV[1])
end
return count
`)

// Store reads and writes engagement counters.
type Store struct {
	client redis.UniversalClient
}

// NewStore creates a Redis-backed engagement store.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func key(contactID string) string {
	return keyPrefix + contactID
}

// RecordInteraction counts one interaction with the contact at the given time
// and returns the updated history.
func (s *Store) RecordInteraction(ctx context.Context, contactID string, at time.Time) (directory.Engagement, error) {
	if _, err := recordScript.Run(ctx, s.client, []string{key(contactID)}, at.UTC().UnixMilli()).Int64(); err != nil {
		return directory.Engagement{}, fmt.Errorf("record interaction: %w", err)
	}

	history, err := s.Get(ctx, contactID)
	if err != nil {
		return directory.Engagement{}, err
	}
	return history[contactID], nil
}

// Get returns the engagement history of each contact. Contacts without
// history are present with zero values.
func (s *Store) Get(ctx context.Context, contactIDs ...string) (map[string]directory.Engagement, error) {
	result := make(map[string]directory.Engagement, len(contactIDs))
	if len(contactIDs) == 0 {
		return result, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(contactIDs))
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range contactIDs {
			cmds[i] = pipe.HGetAll(ctx, key(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load engagement: %w", err)
	}

	for i, id := range contactIDs {
		result[id] = parseEngagement(cmds[i].Val())
	}
	return result, nil
}

func parseEngagement(fields map[string]string) directory.Engagement {
	var e directory.Engagement
	if raw, ok := fields[fieldCount]; ok {
		if count, err := strconv.Atoi(raw); err == nil && count > 0 {
			e.InteractionCount = count
		}
	}
	if raw, ok := fields[fieldLast]; ok {
		if millis, err := strconv.ParseInt(raw, 10, 64); err == nil && millis > 0 {
			last := time.UnixMilli(millis).UTC()
			e.LastInteraction = &last
		}
	}
	return e
}
