package models

import (
	"fmt"
	"time"
)

const DefaultRoomCapacity = 2

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomNumber  string    `json:"roomNumber" gorm:"size:10;uniqueIndex;not null"`
	RoomType    string    `json:"roomType" gorm:"size:50;index"`
	Price       float64   `json:"price" gorm:"type:numeric(8,2)"` // Giá mỗi đêm
	IsAvailable bool      `json:"isAvailable" gorm:"default:true"`
	Capacity    int       `json:"capacity" gorm:"default:2"` // Số khách tối đa
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) String() string {
	return fmt.Sprintf("Room %s (%s)", r.RoomNumber, r.RoomType)
}

// Fits kiểm tra số khách có vượt sức chứa của phòng không
func (r *Room) Fits(guests int) bool {
	return guests <= r.Capacity
}

func (r *Room) Validate() error {
	if r.RoomNumber == "" {
		return fmt.Errorf("room number is required")
	}
	if len(r.RoomNumber) > 10 {
		return fmt.Errorf("room number %q is longer than 10 characters", r.RoomNumber)
	}
	if r.Price < 0 {
		return fmt.Errorf("invalid price: %.2f, must not be negative", r.Price)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("invalid capacity: %d, must be at least 1", r.Capacity)
	}
	return nil
}
