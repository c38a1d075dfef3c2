package constants

import "time"

// Định dạng ngày dùng cho toàn bộ API
const DateLayout = "2006-01-02"

// Cache keys
const (
	CacheKeyLatestBookings        = "bookings:latest"
	CacheKeyLatestBookingsVersion = "bookings:latest:version"
	CacheKeyLastFilters           = "last_filters:"
	RoomLockKeyPrefix             = "lock:room:"
)

// TTLs
const (
	LatestBookingsTTL  = 10 * time.Minute
	LastFiltersTTL     = 30 * time.Minute
	DefaultRoomLockTTL = 10 * time.Second
)

// Websocket events
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingDeleted   = "booking.deleted"
	EventBookingCompleted = "booking.completed"
)

// Defaults
const (
	DefaultGuests       = 1
	DefaultFeedLimit    = 50
	MaxFeedLimit        = 500
	DefaultPageLimit    = 10
	MaxTypeScanAttempts = 3
)
