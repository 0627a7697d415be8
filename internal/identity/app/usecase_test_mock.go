package app

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRedisRepository Mock RedisRepository
type MockRedisRepository[T any] struct {
	mock.Mock
}

// Set moke set key
func (m *MockRedisRepository[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Get moke get key
func (m *MockRedisRepository[T]) Get(ctx context.Context, key string) (T, error) {
	args := m.Called(ctx, key)
	if args.Get(0) != nil {
		return args.Get(0).(T), args.Error(1)
	}
	var zero T
	return zero, args.Error(1)
}

// Del moke delete key
func (m *MockRedisRepository[T]) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// GetTTL moke get ttl
func (m *MockRedisRepository[T]) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

// ExtendTTL moke extend ttl
func (m *MockRedisRepository[T]) ExtendTTL(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

// MockMailSender Mock mailer.Sender
type MockMailSender struct {
	mock.Mock
}

// SendAccessCode moke send access code mail
func (m *MockMailSender) SendAccessCode(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}
