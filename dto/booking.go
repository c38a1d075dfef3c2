package dto

import (
	"time"

	"github.com/leenx3/Stayease-hotel/types"
	"github.com/leenx3/Stayease-hotel/validator"
)

// SubmitBookingRequest là DTO cho form đặt phòng
type SubmitBookingRequest struct {
	Name         string               `json:"name" form:"name"`
	Email        string               `json:"email" form:"email"`
	RoomID       *uint                `json:"roomId,omitempty" form:"roomId"`
	RoomType     string               `json:"roomType,omitempty" form:"roomType"`
	CheckInDate  string               `json:"checkInDate" form:"checkInDate"`
	CheckOutDate string               `json:"checkOutDate" form:"checkOutDate"`
	Guests       validator.GuestCount `json:"guests,omitempty" form:"guests"`
}

// EditBookingRequest là DTO cho admin sửa ngày booking
type EditBookingRequest struct {
	CheckInDate  string `json:"checkInDate" form:"checkInDate" binding:"required,dateonly"`
	CheckOutDate string `json:"checkOutDate" form:"checkOutDate" binding:"required,dateonly"`
}

// MarkCompletedRequest là DTO cho thao tác hàng loạt "đánh dấu hoàn thành"
type MarkCompletedRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BookingCreatedResponse trả về id của booking vừa tạo
type BookingCreatedResponse struct {
	ID uint `json:"id"`
}

// BookingResponse là DTO cho chi tiết booking (trang xác nhận)
type BookingResponse struct {
	ID           uint                  `json:"id"`
	Customer     types.CustomerSummary `json:"customer"`
	Room         BookingRoomResponse   `json:"room"`
	CheckInDate  string                `json:"checkInDate"`
	CheckOutDate string                `json:"checkOutDate"`
	Nights       int                   `json:"nights"`
	Guests       int                   `json:"guests"`
	TotalPrice   float64               `json:"totalPrice"`
	IsCompleted  bool                  `json:"isCompleted"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Price      float64 `json:"price"`
}

// LatestBooking là bản ghi phẳng cho feed booking mới nhất
type LatestBooking struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customerName"`
	RoomNumber   string  `json:"roomNumber"`
	RoomType     string  `json:"roomType"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	TotalPrice   float64 `json:"totalPrice"`
}

type LatestBookingsResponse struct {
	Bookings []LatestBooking `json:"bookings"`
}

// BookingListFilters là bộ lọc cho trang quản trị
type BookingListFilters struct {
	Page      int
	Limit     int
	Completed *bool
	Search    string
}

// AdminDashboardResponse gồm danh sách booking và tổng doanh thu
type AdminDashboardResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Income   float64           `json:"income"`
}

// MarkCompletedResponse trả về số booking đã được cập nhật
type MarkCompletedResponse struct {
	Updated int64 `json:"updated"`
}

// BookingEvent là payload gửi qua websocket
type BookingEvent struct {
	Event   string         `json:"event"`
	Booking *LatestBooking `json:"booking,omitempty"`
	IDs     []uint         `json:"ids,omitempty"`
}
