package locking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockObtainer struct {
	mock.Mock
}

func (m *MockObtainer) Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error) {
	args := m.Called(ctx, key, ttl, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redislock.Lock), args.Error(1)
}

func TestRedisGuardHeldKeyIsInFlight(t *testing.T) {
	locker := new(MockObtainer)
	locker.On("Obtain", mock.Anything, "voucher-desk:submit:draft:d1", DefaultLockTTL, (*redislock.Options)(nil)).
		Return(nil, redislock.ErrNotObtained)

	release, err := NewRedisGuard(locker, 0).Acquire(context.Background(), "draft:d1")

	assert.Nil(t, release)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInFlight)
	locker.AssertExpectations(t)
}

func TestRedisGuardRedisFailure(t *testing.T) {
	locker := new(MockObtainer)
	locker.On("Obtain", mock.Anything, mock.Anything, 10*time.Second, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := NewRedisGuard(locker, 10*time.Second).Acquire(context.Background(), "draft:d1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSubmissionInFlight)
}
