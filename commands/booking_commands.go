package commands

import (
	"github.com/leenx3/Stayease-hotel/models"

	"gorm.io/gorm"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand command để tạo booking mới
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

// Execute chỉ ghi bảng bookings, không ghi lại customer và room đi kèm
func (c *CreateBookingCommand) Execute() error {
	return c.db.Omit("Customer", "Room").Create(c.booking).Error
}

// UpdateStayCommand command để cập nhật ngày và giá của booking
type UpdateStayCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateStayCommand(booking *models.Booking, db *gorm.DB) *UpdateStayCommand {
	return &UpdateStayCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateStayCommand) Execute() error {
	return c.db.Model(c.booking).Updates(map[string]interface{}{
		"check_in_date":  c.booking.CheckInDate,
		"check_out_date": c.booking.CheckOutDate,
		"total_price":    c.booking.TotalPrice,
		"is_completed":   c.booking.IsCompleted,
	}).Error
}

// DeleteBookingCommand command để xóa booking
type DeleteBookingCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID uint, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute() error {
	return c.db.Delete(&models.Booking{}, c.bookingID).Error
}
