package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/sukalov/sbsong/internal/lyrics/parsers/songshowplus"
)

const songKeyPrefix = "sbsong:"

type DBManager struct {
	client *redisClient.Client
	ttl    time.Duration
}

// NewDBManager connects to Redis. A bare host:port is reached over TLS as the
// default user, the way hosted Redis hands out credentials.
func NewDBManager(url, password string, ttl time.Duration) (*DBManager, error) {
	opt, err := redisClient.ParseURL(connectionURL(url, password))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &DBManager{client: redisClient.NewClient(opt), ttl: ttl}, nil
}

func connectionURL(url, password string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return fmt.Sprintf("rediss://default:%s@%s", password, url)
}

func songKey(hash string) string {
	return songKeyPrefix + hash
}

// Ping checks the connection.
func (redis *DBManager) Ping(ctx context.Context) error {
	return redis.client.Ping(ctx).Err()
}

// GetSong returns the cached song for a content hash
func (redis *DBManager) GetSong(ctx context.Context, hash string) (*songshowplus.Song, bool, error) {
	data, err := redis.client.Get(ctx, songKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get song %s: %w", hash, err)
	}
	var song songshowplus.Song
	if err := json.Unmarshal(data, &song); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached song %s: %w", hash, err)
	}
	return &song, true, nil
}

// SetSong caches a parsed song under its content hash
func (redis *DBManager) SetSong(ctx context.Context, hash string, song songshowplus.Song) error {
	songJSON, err := json.Marshal(song)
	if err != nil {
		return err
	}
	return redis.client.Set(ctx, songKey(hash), songJSON, redis.ttl).Err()
}

// IncrementUploadCount counts how often a file has been uploaded by username.
func (redis *DBManager) IncrementUploadCount(ctx context.Context, username string, hash string) error {
	err := redis.client.HIncrBy(ctx, "uploads:"+username, hash, 1).Err()
	if err != nil {
		return fmt.Errorf("failed to increment upload count for user %s and hash %s: %v", username, hash, err)
	}
	return nil
}

func (redis *DBManager) Close() error {
	return redis.client.Close()
}
