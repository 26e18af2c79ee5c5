package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	EmailCodePrefix     = "email:code"
)

var (
	ErrEmailCodeNotFound  = errors.New("email code not found")
	ErrEmailCodeSetFailed = errors.New("email code set failed")
	ErrEmailCodeDelFailed = errors.New("email code delete failed")
)

// EmailRepository 验证码存取，scope 区分 register/reset
type EmailRepository struct {
	RDB *redis.Client
}

func (e *EmailRepository) codeKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s", EmailCodePrefix, scope, email)
}

func (e *EmailRepository) SetCode(scope, email, code string) error {
	if err := e.RDB.Set(context.Background(), e.codeKey(scope, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrEmailCodeSetFailed
	}
	return nil
}

func (e *EmailRepository) GetCode(scope, email string) (string, error) {
	val, err := e.RDB.Get(context.Background(), e.codeKey(scope, email)).Result()
	if errors.Is(err, redis.Nil) {
		// 不存在或已过期
		return "", ErrEmailCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteCode 校验通过后一次性删除（幂等）
func (e *EmailRepository) DeleteCode(scope, email string) error {
	if err := e.RDB.Del(context.Background(), e.codeKey(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
