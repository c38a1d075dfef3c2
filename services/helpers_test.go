package services

import (
	"sync"
	"testing"
	"time"

	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/services/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testToday = mustDate("2024-06-01")

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedNow() time.Time {
	return testToday.Add(10 * time.Hour)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Room{}, &models.Booking{}))
	return db
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func seedRoom(t *testing.T, db *gorm.DB, number, roomType string, price float64, capacity int) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber:  number,
		RoomType:    roomType,
		Price:       price,
		Capacity:    capacity,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type bookingFixture struct {
	db       *gorm.DB
	mr       *miniredis.Miniredis
	rdb      *redis.Client
	notifier *recordingNotifier
	service  *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	db := newTestDB(t)
	mr, rdb := newTestRedis(t)
	notifier := &recordingNotifier{}
	service := NewBookingService(BookingServiceOptions{
		DB:       db,
		Redis:    rdb,
		Notifier: notifier,
		Logger:   logger.NewDefaultLogger(logger.ErrorLevel),
		Now:      fixedNow,
	})
	return &bookingFixture{db: db, mr: mr, rdb: rdb, notifier: notifier, service: service}
}
