package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/leenx3/Stayease-hotel/constants"
	apperrors "github.com/leenx3/Stayease-hotel/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RoomLocker tuần tự hóa các thao tác ghi booking trên cùng một phòng
type RoomLocker interface {
	Lock(ctx context.Context, roomID uint) (unlock func(), err error)
}

// Chỉ xóa khóa khi token còn là của người giữ khóa
var releaseRoomLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRoomLocker dùng SET NX PX để khóa phòng giữa nhiều instance
type RedisRoomLocker struct {
	rdb   *redis.Client
	ttl   time.Duration
	retry time.Duration
}

func NewRedisRoomLocker(rdb *redis.Client, ttl time.Duration) *RedisRoomLocker {
	if ttl <= 0 {
		ttl = constants.DefaultRoomLockTTL
	}
	return &RedisRoomLocker{
		rdb:   rdb,
		ttl:   ttl,
		retry: 25 * time.Millisecond,
	}
}

func roomLockKey(roomID uint) string {
	return fmt.Sprintf("%s%d", constants.RoomLockKeyPrefix, roomID)
}

func (l *RedisRoomLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	key := roomLockKey(roomID)
	token := uuid.NewString()

	// Không chờ lâu hơn thời gian sống của khóa
	waitCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	for {
		ok, err := l.rdb.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return func() {
				releaseRoomLock.Run(context.Background(), l.rdb, []string{key}, token)
			}, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, apperrors.NewAppError(apperrors.ErrCodeLockTimeout,
				"Phòng đang được xử lý, vui lòng thử lại", apperrors.ErrLockNotAcquired)
		case <-time.After(l.retry):
		}
	}
}

// LocalRoomLocker khóa theo phòng trong một process
type LocalRoomLocker struct {
	mu    sync.Mutex
	slots map[uint]chan struct{}
}

func NewLocalRoomLocker() *LocalRoomLocker {
	return &LocalRoomLocker{slots: make(map[uint]chan struct{})}
}

func (l *LocalRoomLocker) slot(roomID uint) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[roomID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[roomID] = ch
	}
	return ch
}

func (l *LocalRoomLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	ch := l.slot(roomID)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, apperrors.NewAppError(apperrors.ErrCodeLockTimeout,
			"Phòng đang được xử lý, vui lòng thử lại", ctx.Err())
	}
}
