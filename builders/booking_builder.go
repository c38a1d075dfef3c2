package builders

import (
	"time"

	"github.com/leenx3/Stayease-hotel/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
	room    *models.Room
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Guests: 1},
	}
}

// WithCustomer thêm thông tin khách
func (b *BookingBuilder) WithCustomer(customer *models.Customer) *BookingBuilder {
	b.booking.CustomerID = customer.ID
	b.booking.Customer = *customer
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(room *models.Room) *BookingBuilder {
	b.room = room
	b.booking.RoomID = room.ID
	b.booking.Room = *room
	return b
}

// WithStay thêm ngày nhận và trả phòng
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = models.NewDate(checkIn)
	b.booking.CheckOutDate = models.NewDate(checkOut)
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	if guests > 0 {
		b.booking.Guests = guests
	}
	return b
}

// CompletedIfBefore đánh dấu hoàn thành khi ngày trả phòng đã qua so với today
func (b *BookingBuilder) CompletedIfBefore(today time.Time) *BookingBuilder {
	if b.booking.CheckOutDate.Before(models.DateOnly(today)) {
		b.booking.IsCompleted = true
	}
	return b
}

// Build tạo booking hoàn chỉnh, tổng tiền = số đêm x giá phòng
func (b *BookingBuilder) Build() *models.Booking {
	if b.room != nil {
		b.booking.TotalPrice = models.PriceFor(b.booking.Nights(), b.room.Price)
	}
	return b.booking
}
