package controllers

import (
	"strconv"

	"github.com/leenx3/Stayease-hotel/dto"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/response"
	"github.com/leenx3/Stayease-hotel/types"

	"github.com/gin-gonic/gin"
)

// parseID đọc id từ path, trả response 400 khi không hợp lệ
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// fail trả lỗi theo mã AppError và ghi lỗi vào context để middleware log
func fail(c *gin.Context, err error, input interface{}) {
	c.Error(err)
	response.AppError(c, err, input)
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		RoomNumber:  room.RoomNumber,
		RoomType:    room.RoomType,
		Price:       room.Price,
		Capacity:    room.Capacity,
		IsAvailable: room.IsAvailable,
		Description: room.Description,
		Avatar:      room.Avatar,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		Customer: types.CustomerSummary{
			ID:    booking.Customer.ID,
			Name:  booking.Customer.Name,
			Email: booking.Customer.Email,
		},
		Room: dto.BookingRoomResponse{
			ID:         booking.Room.ID,
			RoomNumber: booking.Room.RoomNumber,
			RoomType:   booking.Room.RoomType,
			Price:      booking.Room.Price,
		},
		CheckInDate:  booking.CheckInDate.String(),
		CheckOutDate: booking.CheckOutDate.String(),
		Nights:       booking.Nights(),
		Guests:       booking.Guests,
		TotalPrice:   booking.TotalPrice,
		IsCompleted:  booking.IsCompleted,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}
