package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/validator"

	"gorm.io/gorm"
)

// RoomQuery chọn phòng theo id hoặc theo loại phòng
type RoomQuery struct {
	RoomID   *uint
	RoomType string
}

// AvailabilityService chỉ đọc dữ liệu, không ghi
type AvailabilityService struct {
	db     *gorm.DB
	logger logger.Logger
	now    func() time.Time
}

type AvailabilityServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Now    func() time.Time
}

func NewAvailabilityService(opts AvailabilityServiceOptions) *AvailabilityService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AvailabilityService{
		db:     opts.DB,
		logger: opts.Logger,
		now:    opts.Now,
	}
}

// FindAvailableRoom tìm phòng trống cho khoảng [checkIn, checkOut).
// ok = false khi không có phòng nào phù hợp, đây không phải lỗi.
func (s *AvailabilityService) FindAvailableRoom(ctx context.Context, q RoomQuery, checkIn, checkOut time.Time) (*models.Room, bool, error) {
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, false, err
	}
	db := s.db.WithContext(ctx)

	if q.RoomID != nil {
		var room models.Room
		if err := db.First(&room, *q.RoomID).Error; err != nil {
			return nil, false, roomLookupError(err)
		}
		busy, err := hasOverlap(db, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return nil, false, err
		}
		if busy {
			return nil, false, nil
		}
		return &room, true, nil
	}

	candidates, err := s.roomsOfType(ctx, q.RoomType)
	if err != nil {
		return nil, false, err
	}
	for i := range candidates {
		busy, err := hasOverlap(db, candidates[i].ID, checkIn, checkOut, 0)
		if err != nil {
			return nil, false, err
		}
		if !busy {
			return &candidates[i], true, nil
		}
	}
	s.logger.Debug("Không còn phòng loại %q trống từ %s đến %s", q.RoomType,
		models.NewDate(checkIn), models.NewDate(checkOut))
	return nil, false, nil
}

// SuggestRoomType trả về exists = true khi đã có phòng thuộc loại input,
// ngược lại trả về loại phòng gần giống nhất (nếu có).
func (s *AvailabilityService) SuggestRoomType(ctx context.Context, input string) (suggestion string, exists bool, err error) {
	var known []string
	if err := s.db.WithContext(ctx).Model(&models.Room{}).Distinct().Pluck("room_type", &known).Error; err != nil {
		return "", false, apperrors.DBError("Không thể lấy danh sách loại phòng", err)
	}
	for _, k := range known {
		if SameRoomType(k, input) {
			return k, true, nil
		}
	}
	suggestion, _ = ClosestRoomType(input, known)
	return suggestion, false, nil
}

// SearchRooms trả về các phòng trống theo bộ lọc, sắp xếp theo số phòng.
// Khi không có khoảng ngày, phòng trống là phòng không có booking nào phủ ngày hôm nay.
func (s *AvailabilityService) SearchRooms(ctx context.Context, f dto.RoomSearchFilters) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Model(&models.Room{})

	if f.MinCapacity != nil && *f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}
	if f.Guests != nil && *f.Guests > 0 {
		q = q.Where("capacity >= ?", *f.Guests)
	}
	if f.MaxPrice != nil && *f.MaxPrice > 0 {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	checkIn := models.DateOnly(s.now())
	checkOut := checkIn.AddDate(0, 0, 1)
	if f.HasDateRange() {
		checkIn, checkOut = models.DateOnly(*f.CheckIn), models.DateOnly(*f.CheckOut)
	}
	q = q.Where("NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.check_in_date < ? AND bookings.check_out_date > ?)",
		models.NewDate(checkOut), models.NewDate(checkIn))

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, apperrors.DBError("Không thể lấy danh sách phòng", err)
	}

	if f.RoomType != "" {
		filtered := rooms[:0]
		for _, room := range rooms {
			if RoomTypeContains(room.RoomType, f.RoomType) {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	sortRooms(rooms)
	return rooms, nil
}

// GetRoom lấy chi tiết một phòng
func (s *AvailabilityService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, roomLookupError(err)
	}
	return &room, nil
}

func (s *AvailabilityService) roomsOfType(ctx context.Context, roomType string) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, apperrors.DBError("Không thể lấy danh sách phòng", err)
	}
	matched := rooms[:0]
	for _, room := range rooms {
		if SameRoomType(room.RoomType, roomType) {
			matched = append(matched, room)
		}
	}
	sortRooms(matched)
	return matched, nil
}

// hasOverlap kiểm tra phòng có booking giao với [checkIn, checkOut) không, bỏ qua excludeID
func hasOverlap(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ? AND check_in_date < ? AND check_out_date > ?",
			roomID, models.NewDate(checkOut), models.NewDate(checkIn))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.DBError("Không thể kiểm tra lịch đặt phòng", err)
	}
	return count > 0, nil
}

func roomLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Không tìm thấy phòng", apperrors.ErrRoomNotFound)
	}
	return apperrors.DBError("Không thể lấy thông tin phòng", err)
}

// sortRooms sắp xếp theo số phòng, so sánh theo số khi cả hai đều là số
func sortRooms(rooms []models.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return lessRoomNumber(rooms[i].RoomNumber, rooms[j].RoomNumber)
	})
}

func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA == nil && errB == nil && na != nb {
		return na < nb
	}
	return a < b
}
