package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobberBack/internal/models"
)

// OTPStore keeps one-time verification codes in Redis with a TTL, replacing
// the in-memory maps the controllers used to hold. Codes expire on their own;
// a successful verify consumes the code.
type OTPStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func otpKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func (s *OTPStore) SaveCode(ctx context.Context, phone, code string) error {
	ttl := s.TTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return s.RDB.Set(ctx, otpKey(phone), code, ttl).Err()
}

func (s *OTPStore) VerifyCode(ctx context.Context, phone, code string) error {
	stored, err := s.RDB.Get(ctx, otpKey(phone)).Result()
	if err == redis.Nil {
		return models.ErrInvalidOTP
	}
	if err != nil {
		return err
	}
	if stored != code {
		return models.ErrInvalidOTP
	}
	return s.RDB.Del(ctx, otpKey(phone)).Err()
}
