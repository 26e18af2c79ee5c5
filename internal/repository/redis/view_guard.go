package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ViewSeenKeyPrefix = "view:seen:session" // 每个会话已计过浏览的档案ID集合
	ViewSeenTTL       = 24 * time.Hour
)

// ViewGuardRepository 会话级浏览去重。
// 只是挡刷新刷计数的优化，客户端换个会话就能绕过，不是安全控制。
type ViewGuardRepository struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewViewGuardRepository(rdb *redis.Client) *ViewGuardRepository {
	return &ViewGuardRepository{RDB: rdb, TTL: ViewSeenTTL}
}

func (r *ViewGuardRepository) seenKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", ViewSeenKeyPrefix, sessionID)
}

// ShouldCountView 第一次见到 (session, profile) 返回 true 并记录，之后一律 false。
// SAdd 的返回值就是判据，天然免并发竞争。
func (r *ViewGuardRepository) ShouldCountView(ctx context.Context, sessionID string, profileID uint64) (bool, error) {
	k := r.seenKey(sessionID)
	added, err := r.RDB.SAdd(ctx, k, profileID).Result()
	if err != nil {
		return false, err
	}
	if added > 0 {
		// 每次新增都续期，集合随会话一起过期
		_ = r.RDB.Expire(ctx, k, r.TTL).Err()
		return true, nil
	}
	return false, nil
}

// Forget 测试和会话登出时清掉整个集合
func (r *ViewGuardRepository) Forget(ctx context.Context, sessionID string) error {
	return r.RDB.Del(ctx, r.seenKey(sessionID)).Err()
}
