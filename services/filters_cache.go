package services

import (
	"context"
	"time"

	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, sessionID string, filters *dto.RoomSearchFilters) error {
	if sessionID == "" {
		return nil
	}
	return SetToRedis(ctx, rdb, constants.CacheKeyLastFilters+sessionID, filters, constants.LastFiltersTTL)
}

// GetLastFilters trả về nil, nil khi phiên chưa có bộ lọc nào
func GetLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.RoomSearchFilters, error) {
	if sessionID == "" {
		return nil, nil
	}
	var filters dto.RoomSearchFilters
	found, err := GetFromRedis(ctx, rdb, constants.CacheKeyLastFilters+sessionID, &filters)
	if err != nil || !found {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return DeleteFromRedis(ctx, rdb, constants.CacheKeyLastFilters+sessionID)
}

// Merge yêu cầu cũ với yêu cầu mới, giá trị mới được ưu tiên
func MergeFilters(old *dto.RoomSearchFilters, new *dto.RoomSearchFilters) *dto.RoomSearchFilters {
	if old == nil {
		return new
	}
	new.RoomType = orString(new.RoomType, old.RoomType)
	new.MinCapacity = orIntPointer(new.MinCapacity, old.MinCapacity)
	new.Guests = orIntPointer(new.Guests, old.Guests)

	// Khoảng ngày chỉ được lấy lại khi yêu cầu mới không có cả hai ngày
	if new.CheckIn == nil && new.CheckOut == nil {
		new.CheckIn = orTimePointer(new.CheckIn, old.CheckIn)
		new.CheckOut = orTimePointer(new.CheckOut, old.CheckOut)
	}

	new.MaxPrice = orFloatPointer(new.MaxPrice, old.MaxPrice)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
