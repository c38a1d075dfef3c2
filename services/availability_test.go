package services

import (
	"context"
	"testing"

	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/services/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAvailability(db *gorm.DB) *AvailabilityService {
	return NewAvailabilityService(AvailabilityServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
		Now:    fixedNow,
	})
}

func seedBooking(t *testing.T, db *gorm.DB, room *models.Room, in, out string) *models.Booking {
	t.Helper()
	customer := &models.Customer{Name: "Guest " + in, Email: in + "@example.com"}
	require.NoError(t, db.Create(customer).Error)
	booking := &models.Booking{
		CustomerID:   customer.ID,
		RoomID:       room.ID,
		CheckInDate:  models.NewDate(mustDate(in)),
		CheckOutDate: models.NewDate(mustDate(out)),
		Guests:       1,
	}
	booking.TotalPrice = models.PriceFor(booking.Nights(), room.Price)
	require.NoError(t, db.Omit("Customer", "Room").Create(booking).Error)
	return booking
}

func intPtr(v int) *int { return &v }

func TestFindAvailableRoomByID(t *testing.T) {
	db := newTestDB(t)
	s := newAvailability(db)
	ctx := context.Background()
	room := seedRoom(t, db, "101", "Standard", 80, 2)
	seedBooking(t, db, room, "2024-07-01", "2024-07-05")

	_, ok, err := s.FindAvailableRoom(ctx, RoomQuery{RoomID: &room.ID}, mustDate("2024-07-03"), mustDate("2024-07-04"))
	require.NoError(t, err)
	require.False(t, ok)

	got, ok, err := s.FindAvailableRoom(ctx, RoomQuery{RoomID: &room.ID}, mustDate("2024-07-05"), mustDate("2024-07-06"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, room.ID, got.ID)

	missing := uint(404)
	_, _, err = s.FindAvailableRoom(ctx, RoomQuery{RoomID: &missing}, mustDate("2024-07-05"), mustDate("2024-07-06"))
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))

	_, _, err = s.FindAvailableRoom(ctx, RoomQuery{RoomID: &room.ID}, mustDate("2024-07-06"), mustDate("2024-07-05"))
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange))
}

func TestFindAvailableRoomByTypeFoldsDiacritics(t *testing.T) {
	db := newTestDB(t)
	s := newAvailability(db)
	seedRoom(t, db, "12", "Phòng Đôi", 90, 2)
	first := seedRoom(t, db, "9", "phong doi", 90, 2)

	got, ok, err := s.FindAvailableRoom(context.Background(), RoomQuery{RoomType: "PHONG DOI"},
		mustDate("2024-07-01"), mustDate("2024-07-02"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first.ID, got.ID)
}

func TestSuggestRoomType(t *testing.T) {
	db := newTestDB(t)
	s := newAvailability(db)
	seedRoom(t, db, "1", "Deluxe", 120, 2)
	seedRoom(t, db, "2", "Family Suite", 200, 4)

	suggestion, exists, err := s.SuggestRoomType(context.Background(), "deluxe")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "Deluxe", suggestion)

	suggestion, exists, err = s.SuggestRoomType(context.Background(), "famly suite")
	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, "Family Suite", suggestion)
}

func TestSearchRooms(t *testing.T) {
	db := newTestDB(t)
	s := newAvailability(db)
	ctx := context.Background()

	small := seedRoom(t, db, "10", "Standard", 60, 1)
	busyToday := seedRoom(t, db, "2", "Standard", 70, 2)
	family := seedRoom(t, db, "3", "Family", 150, 4)
	seedBooking(t, db, busyToday, "2024-05-30", "2024-06-03")
	seedBooking(t, db, family, "2024-07-01", "2024-07-10")

	rooms, err := s.SearchRooms(ctx, dto.RoomSearchFilters{})
	require.NoError(t, err)
	require.Equal(t, []string{"3", "10"}, roomNumbers(rooms))

	in, out := mustDate("2024-07-02"), mustDate("2024-07-03")
	rooms, err = s.SearchRooms(ctx, dto.RoomSearchFilters{CheckIn: &in, CheckOut: &out})
	require.NoError(t, err)
	require.Equal(t, []string{"2", "10"}, roomNumbers(rooms))

	rooms, err = s.SearchRooms(ctx, dto.RoomSearchFilters{Guests: intPtr(2)})
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, roomNumbers(rooms))

	maxPrice := 100.0
	rooms, err = s.SearchRooms(ctx, dto.RoomSearchFilters{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Equal(t, []string{"10"}, roomNumbers(rooms))

	rooms, err = s.SearchRooms(ctx, dto.RoomSearchFilters{RoomType: "fam"})
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, roomNumbers(rooms))

	// Giá trị 0 được bỏ qua
	rooms, err = s.SearchRooms(ctx, dto.RoomSearchFilters{MinCapacity: intPtr(0)})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, small.ID, rooms[1].ID)
}

func TestGetRoom(t *testing.T) {
	db := newTestDB(t)
	s := newAvailability(db)
	room := seedRoom(t, db, "101", "Standard", 80, 2)

	got, err := s.GetRoom(context.Background(), room.ID)
	require.NoError(t, err)
	require.Equal(t, "101", got.RoomNumber)

	_, err = s.GetRoom(context.Background(), 999)
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestLessRoomNumber(t *testing.T) {
	require.True(t, lessRoomNumber("2", "10"))
	require.False(t, lessRoomNumber("10", "2"))
	require.True(t, lessRoomNumber("A1", "B1"))
	require.True(t, lessRoomNumber("10", "A1"))
}

func roomNumbers(rooms []models.Room) []string {
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	return numbers
}
