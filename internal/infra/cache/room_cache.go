package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "room:v1:"

// RoomCache is a read-through cache in front of room lookups by id.
// Rooms never change after creation, so entries only expire by TTL.
// Redis failures degrade to the underlying store.
type RoomCache struct {
	next   queries.RoomReadStore
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRoomCache(next queries.RoomReadStore, client redis.UniversalClient, ttl time.Duration) *RoomCache {
	return &RoomCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// List is not cached: filtered listings are cheap and must see new rooms immediately.
func (c *RoomCache) List(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	return c.next.List(ctx, filter)
}

func (c *RoomCache) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.RoomView, error) {
	if len(ids) == 0 {
		return []*queries.RoomView{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = roomKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		slog.Warn("room cache read failed", "error", err.Error())
		return c.next.FindByIDs(ctx, ids)
	}

	rooms := make([]*queries.RoomView, 0, len(ids))
	var missing []uuid.UUID
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		var room queries.RoomView
		if err := json.Unmarshal([]byte(raw), &room); err != nil {
			missing = append(missing, ids[i])
			continue
		}
		rooms = append(rooms, &room)
	}

	if len(missing) == 0 {
		return rooms, nil
	}

	fetched, err := c.next.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched)

	return append(rooms, fetched...), nil
}

func (c *RoomCache) store(ctx context.Context, rooms []*queries.RoomView) {
	if len(rooms) == 0 {
		return
	}
	pipe := c.client.Pipeline()
	for _, r := range rooms {
		payload, err := json.Marshal(r)
		if err != nil {
			continue
		}
		pipe.Set(ctx, roomKey(r.ID), payload, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("room cache write failed", "rooms", len(rooms), "error", err.Error())
	}
}

func roomKey(id uuid.UUID) string {
	return roomKeyPrefix + id.String()
}
