package dto

type CustomerResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BookingCount int64  `json:"bookingCount"`
}
