package redisstore

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Room activity counts are cheap to recompute, so the cache TTL stays short
// and every failure degrades to a live count.
const activityTTL = 30 * time.Second

type Store struct {
	client *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func activityKey(roomID string) string {
	return fmt.Sprintf("room:activity:%s", roomID)
}

// GetRoomActivity returns the cached trailing-24h message count for a room.
// A miss or a redis error both report false.
func (s *Store) GetRoomActivity(ctx context.Context, roomID string) (int64, bool) {
	v, err := s.client.Get(ctx, activityKey(roomID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[redis] get room activity room=%s: %v", roomID, err)
		}
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetRoomActivity caches the count; failures are logged and dropped.
func (s *Store) SetRoomActivity(ctx context.Context, roomID string, n int64) {
	if err := s.client.Set(ctx, activityKey(roomID), strconv.FormatInt(n, 10), activityTTL).Err(); err != nil {
		log.Printf("[redis] set room activity room=%s: %v", roomID, err)
	}
}
