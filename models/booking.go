package models

import (
	"math"
	"time"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customerId" gorm:"index;not null"`
	Customer     Customer  `json:"customer" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	RoomID       uint      `json:"roomId" gorm:"index;not null"`
	Room         Room      `json:"room" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	CheckInDate  Date      `json:"checkInDate" gorm:"index"`
	CheckOutDate Date      `json:"checkOutDate" gorm:"index"` // Không tính đêm của ngày trả phòng
	TotalPrice   float64   `json:"totalPrice" gorm:"type:numeric(8,2)"`
	Guests       int       `json:"guests" gorm:"default:1"`
	IsCompleted  bool      `json:"isCompleted" gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights trả về số đêm của booking
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckInDate.Time, b.CheckOutDate.Time)
}

// Overlaps kiểm tra booking có giao với khoảng [checkIn, checkOut) không
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return Overlaps(b.CheckInDate.Time, b.CheckOutDate.Time, DateOnly(checkIn), DateOnly(checkOut))
}

// Overlaps áp dụng phép thử nửa khoảng: [a, b) và [c, d) giao nhau khi a < d và b > c.
func Overlaps(a, b, c, d time.Time) bool {
	return a.Before(d) && b.After(c)
}

// NightsBetween đếm số ngày lịch giữa checkIn và checkOut.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := DateOnly(checkIn)
	out := DateOnly(checkOut)
	return int(math.Round(out.Sub(in).Hours() / 24))
}

// DateOnly bỏ phần giờ, giữ lại ngày theo UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PriceFor tính tổng tiền = số đêm x giá phòng, làm tròn 2 chữ số
func PriceFor(nights int, nightlyPrice float64) float64 {
	return math.Round(float64(nights)*nightlyPrice*100) / 100
}
