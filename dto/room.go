package dto

import "time"

// RoomSearchFilters là bộ lọc danh sách phòng trống
type RoomSearchFilters struct {
	RoomType    string     `json:"roomType,omitempty"`
	MinCapacity *int       `json:"minCapacity,omitempty"`
	Guests      *int       `json:"guests,omitempty"`
	MaxPrice    *float64   `json:"maxPrice,omitempty"`
	CheckIn     *time.Time `json:"checkIn,omitempty"`
	CheckOut    *time.Time `json:"checkOut,omitempty"`
}

// HasDateRange kiểm tra bộ lọc có khoảng ngày hợp lệ không
func (f *RoomSearchFilters) HasDateRange() bool {
	return f.CheckIn != nil && f.CheckOut != nil && f.CheckIn.Before(*f.CheckOut)
}

type RoomResponse struct {
	ID          uint      `json:"id"`
	RoomNumber  string    `json:"roomNumber"`
	RoomType    string    `json:"roomType"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"isAvailable"`
	Description string    `json:"description,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	RoomNumber  string  `json:"roomNumber" binding:"required,max=10"`
	RoomType    string  `json:"roomType" binding:"required,max=50"`
	Price       float64 `json:"price" binding:"gte=0"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
}

// UpdateRoomRequest là DTO cho request cập nhật room, trường nil được giữ nguyên
type UpdateRoomRequest struct {
	RoomType    *string  `json:"roomType" binding:"omitempty,max=50"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" binding:"omitempty,gte=1"`
	Description *string  `json:"description"`
}

// RoomAvatarResponse trả về url ảnh sau khi upload
type RoomAvatarResponse struct {
	URL string `json:"url"`
}
