package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// MatchPreviewTTL keeps previews fresh enough that a profile edit shows up
// quickly, while absorbing repeated dashboard loads.
const MatchPreviewTTL = 5 * time.Minute

// ensureClient returns the shared Redis client managed by the database
// package. Nil means Redis is not configured (dev mode) and callers skip
// caching.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken keeps a refresh token in Redis until it expires.
// No-op without Redis.
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken checks a presented refresh token against Redis.
// Without Redis validation is skipped and the token passes.
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken removes a refresh token on logout. No-op without Redis.
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Del(Ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// CacheMatchPreview stores a mentor's match preview for MatchPreviewTTL.
// Best-effort: cache failures are logged and ignored.
func CacheMatchPreview(mentorID string, scores []models.MatchScore) {
	client := ensureClient()
	if client == nil {
		return
	}

	data, err := json.Marshal(scores)
	if err != nil {
		log.Println("preview cache: marshal failed:", err)
		return
	}
	key := fmt.Sprintf("match_preview:%s", mentorID)
	if err := client.Set(Ctx, key, data, MatchPreviewTTL).Err(); err != nil {
		log.Println("preview cache: set failed:", err)
	}
}

// GetCachedMatchPreview returns a cached preview, or (nil, false) on miss
// or when Redis is unavailable.
func GetCachedMatchPreview(mentorID string) ([]models.MatchScore, bool) {
	client := ensureClient()
	if client == nil {
		return nil, false
	}

	key := fmt.Sprintf("match_preview:%s", mentorID)
	data, err := client.Get(Ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var scores []models.MatchScore
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, false
	}
	return scores, true
}

// InvalidateMatchPreview drops the cached preview after a batch is created
// so the mentor does not see stale candidates.
func InvalidateMatchPreview(mentorID string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("match_preview:%s", mentorID))
}
