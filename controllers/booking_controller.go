package controllers

import (
	"strconv"

	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/response"
	"github.com/leenx3/Stayease-hotel/services"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/validator"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings  *services.BookingService
	customers *services.CustomerService
	logger    logger.Logger
}

func NewBookingController(bookings *services.BookingService, customers *services.CustomerService, log logger.Logger) *BookingController {
	return &BookingController{
		bookings:  bookings,
		customers: customers,
		logger:    log,
	}
}

// SubmitBooking godoc
// @Summary      Đặt phòng
// @Description  Đặt theo roomId hoặc roomType. Khi lỗi, data.input chứa lại dữ liệu đã nhập.
// @Tags         bookings
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        payload  body  dto.SubmitBookingRequest  true  "Thông tin đặt phòng"
// @Success      201  {object}  response.Response{data=dto.BookingCreatedResponse}
// @Failure      400  {object}  response.Response{data=response.ErrorData}
// @Failure      404  {object}  response.Response{data=response.ErrorData}
// @Failure      409  {object}  response.Response{data=response.ErrorData}
// @Router       /bookings [post]
func (bc *BookingController) SubmitBooking(c *gin.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Dữ liệu đặt phòng không hợp lệ", err), req)
		return
	}

	booking, err := bc.bookings.SubmitBooking(c.Request.Context(), services.SubmitBookingInput{
		Name:     req.Name,
		Email:    req.Email,
		RoomID:   req.RoomID,
		RoomType: req.RoomType,
		CheckIn:  req.CheckInDate,
		CheckOut: req.CheckOutDate,
		Guests:   req.Guests.Int(),
	})
	if err != nil {
		fail(c, err, req)
		return
	}
	response.Created(c, dto.BookingCreatedResponse{ID: booking.ID})
}

// GetBooking godoc
// @Summary      Trang xác nhận booking
// @Tags         bookings
// @Produce      json
// @Param        id   path  int  true  "Booking ID"
// @Success      200  {object}  response.Response{data=dto.BookingResponse}
// @Failure      404  {object}  response.Response
// @Router       /bookings/{id} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}

// LatestBookings godoc
// @Summary      Booking mới nhất
// @Tags         bookings
// @Produce      json
// @Param        limit  query  int  false  "Số bản ghi, mặc định 50"
// @Success      200  {object}  response.Response{data=dto.LatestBookingsResponse}
// @Router       /bookings/latest [get]
func (bc *BookingController) LatestBookings(c *gin.Context) {
	limit := constants.DefaultFeedLimit
	if parsed := validator.ParseOptionalInt(c.Query("limit")); parsed != nil && *parsed > 0 {
		limit = *parsed
	}
	feed, err := bc.bookings.LatestBookings(c.Request.Context(), limit)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, dto.LatestBookingsResponse{Bookings: feed})
}

// ListBookings godoc
// @Summary      Danh sách booking và tổng doanh thu
// @Tags         admin
// @Produce      json
// @Param        page       query  int     false  "Trang, bắt đầu từ 0"
// @Param        limit      query  int     false  "Số bản ghi mỗi trang, mặc định 10 khi có page"
// @Param        completed  query  bool    false  "Lọc theo trạng thái hoàn thành"
// @Param        search     query  string  false  "Tên khách hoặc số phòng"
// @Success      200  {object}  response.Response{data=dto.AdminDashboardResponse}
// @Router       /admin/bookings [get]
func (bc *BookingController) ListBookings(c *gin.Context) {
	filters := dto.BookingListFilters{Search: c.Query("search")}
	page := validator.ParseOptionalInt(c.Query("page"))
	if page != nil && *page >= 0 {
		filters.Page = *page
	}
	if limit := validator.ParseOptionalInt(c.Query("limit")); limit != nil && *limit > 0 {
		filters.Limit = *limit
	} else if page != nil {
		// Có page mà không có limit thì phân trang theo mặc định
		filters.Limit = constants.DefaultPageLimit
	}
	if completed, err := strconv.ParseBool(c.Query("completed")); err == nil {
		filters.Completed = &completed
	}

	bookings, total, income, err := bc.bookings.ListBookings(c.Request.Context(), filters)
	if err != nil {
		fail(c, err, nil)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(b))
	}
	data := dto.AdminDashboardResponse{Bookings: bookingResponses, Income: income}
	if filters.Limit > 0 {
		response.SuccessWithPagination(c, data, filters.Page, filters.Limit, int(total))
		return
	}
	response.Success(c, data)
}

// EditBooking godoc
// @Summary      Sửa ngày booking
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path  int                     true  "Booking ID"
// @Param        payload  body  dto.EditBookingRequest  true  "Ngày mới"
// @Success      200  {object}  response.Response{data=dto.BookingResponse}
// @Failure      400  {object}  response.Response{data=response.ErrorData}
// @Failure      409  {object}  response.Response{data=response.ErrorData}
// @Router       /admin/bookings/{id} [put]
func (bc *BookingController) EditBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EditBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperrors.InvalidDateRange("Ngày không hợp lệ, vui lòng sử dụng định dạng YYYY-MM-DD", err), req)
		return
	}
	checkIn, err := validator.ParseDate(req.CheckInDate)
	if err != nil {
		fail(c, err, req)
		return
	}
	checkOut, err := validator.ParseDate(req.CheckOutDate)
	if err != nil {
		fail(c, err, req)
		return
	}

	booking, err := bc.bookings.EditBooking(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		fail(c, err, req)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}

// DeleteBooking godoc
// @Summary      Xóa booking
// @Tags         admin
// @Param        id   path  int  true  "Booking ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/bookings/{id} [delete]
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bc.bookings.DeleteBooking(c.Request.Context(), id); err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, nil)
}

// MarkCompleted godoc
// @Summary      Đánh dấu hoàn thành hàng loạt
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.MarkCompletedRequest  true  "Danh sách id"
// @Success      200  {object}  response.Response{data=dto.MarkCompletedResponse}
// @Router       /admin/bookings/complete [put]
func (bc *BookingController) MarkCompleted(c *gin.Context) {
	var req dto.MarkCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.MissingField("Vui lòng chọn ít nhất một booking"), req)
		return
	}
	updated, err := bc.bookings.MarkCompleted(c.Request.Context(), req.IDs)
	if err != nil {
		fail(c, err, req)
		return
	}
	response.Success(c, dto.MarkCompletedResponse{Updated: updated})
}

// ListCustomers godoc
// @Summary      Danh sách khách hàng
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]dto.CustomerResponse}
// @Router       /admin/customers [get]
func (bc *BookingController) ListCustomers(c *gin.Context) {
	customers, err := bc.customers.ListCustomers(c.Request.Context())
	if err != nil {
		fail(c, err, nil)
		return
	}
	if customers == nil {
		customers = []dto.CustomerResponse{}
	}
	response.Success(c, customers)
}
