package controllers

import (
	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/middleware"
	"github.com/leenx3/Stayease-hotel/response"
	"github.com/leenx3/Stayease-hotel/services"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RoomController struct {
	availability *services.AvailabilityService
	rooms        *services.RoomService
	rdb          *redis.Client
	logger       logger.Logger
}

func NewRoomController(availability *services.AvailabilityService, rooms *services.RoomService, rdb *redis.Client, log logger.Logger) *RoomController {
	return &RoomController{
		availability: availability,
		rooms:        rooms,
		rdb:          rdb,
		logger:       log,
	}
}

// roomFiltersFromQuery đọc bộ lọc, giá trị sai định dạng bị bỏ qua
func roomFiltersFromQuery(c *gin.Context) *dto.RoomSearchFilters {
	return &dto.RoomSearchFilters{
		RoomType:    c.Query("roomType"),
		MinCapacity: validator.ParseOptionalInt(c.Query("capacity")),
		Guests:      validator.ParseOptionalInt(c.Query("guests")),
		MaxPrice:    validator.ParseOptionalFloat(c.Query("maxPrice")),
		CheckIn:     validator.ParseOptionalDate(c.Query("checkIn")),
		CheckOut:    validator.ParseOptionalDate(c.Query("checkOut")),
	}
}

// ListAvailableRooms godoc
// @Summary      Danh sách phòng trống
// @Tags         rooms
// @Produce      json
// @Param        roomType     query  string  false  "Loại phòng"
// @Param        capacity     query  int     false  "Sức chứa tối thiểu"
// @Param        guests       query  int     false  "Số khách"
// @Param        maxPrice     query  number  false  "Giá tối đa mỗi đêm"
// @Param        checkIn      query  string  false  "YYYY-MM-DD"
// @Param        checkOut     query  string  false  "YYYY-MM-DD"
// @Param        keepFilters  query  bool    false  "Giữ bộ lọc của lần tìm trước"
// @Success      200  {object}  response.Response{data=[]dto.RoomResponse}
// @Router       /rooms [get]
func (rc *RoomController) ListAvailableRooms(c *gin.Context) {
	ctx := c.Request.Context()
	filters := roomFiltersFromQuery(c)
	sessionID := middleware.SessionID(c)

	if c.Query("keepFilters") == "true" {
		last, err := services.GetLastFilters(ctx, rc.rdb, sessionID)
		if err != nil {
			rc.logger.Warn("Lỗi khi đọc bộ lọc của phiên %s: %v", sessionID, err)
		}
		filters = services.MergeFilters(last, filters)
	}
	if err := services.SaveLastFilters(ctx, rc.rdb, sessionID, filters); err != nil {
		rc.logger.Warn("Lỗi khi lưu bộ lọc của phiên %s: %v", sessionID, err)
	}

	rooms, err := rc.availability.SearchRooms(ctx, *filters)
	if err != nil {
		fail(c, err, filters)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		res := convertToRoomResponse(room)
		res.IsAvailable = true
		roomResponses = append(roomResponses, res)
	}
	response.Success(c, roomResponses)
}

// ClearFilters godoc
// @Summary      Xóa bộ lọc đã lưu của phiên
// @Tags         rooms
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  response.Response
// @Router       /rooms/filters [delete]
func (rc *RoomController) ClearFilters(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if err := services.ClearLastFilters(c.Request.Context(), rc.rdb, sessionID); err != nil {
		rc.logger.Warn("Lỗi khi xóa bộ lọc của phiên %s: %v", sessionID, err)
	}
	response.Success(c, nil)
}

// GetRoomDetail godoc
// @Summary      Chi tiết phòng
// @Tags         rooms
// @Produce      json
// @Param        id   path  int  true  "Room ID"
// @Success      200  {object}  response.Response{data=dto.RoomResponse}
// @Failure      404  {object}  response.Response
// @Router       /rooms/{id} [get]
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.availability.GetRoom(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

// ListRooms godoc
// @Summary      Tất cả phòng (quản trị)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]dto.RoomResponse}
// @Router       /admin/rooms [get]
func (rc *RoomController) ListRooms(c *gin.Context) {
	rooms, err := rc.rooms.ListRooms(c.Request.Context())
	if err != nil {
		fail(c, err, nil)
		return
	}
	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}
	response.Success(c, roomResponses)
}

// CreateRoom godoc
// @Summary      Tạo phòng
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  dto.CreateRoomRequest  true  "Thông tin phòng"
// @Success      201  {object}  response.Response{data=dto.RoomResponse}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/rooms [post]
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu phòng không hợp lệ", err), req)
		return
	}
	room, err := rc.rooms.CreateRoom(c.Request.Context(), req)
	if err != nil {
		fail(c, err, req)
		return
	}
	response.Created(c, convertToRoomResponse(*room))
}

// UpdateRoom godoc
// @Summary      Cập nhật phòng
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path  int                    true  "Room ID"
// @Param        payload  body  dto.UpdateRoomRequest  true  "Các trường cần đổi"
// @Success      200  {object}  response.Response{data=dto.RoomResponse}
// @Router       /admin/rooms/{id} [put]
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu phòng không hợp lệ", err), req)
		return
	}
	room, err := rc.rooms.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err, req)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

// DeleteRoom godoc
// @Summary      Xóa phòng cùng các booking của phòng
// @Tags         admin
// @Param        id   path  int  true  "Room ID"
// @Success      200  {object}  response.Response
// @Router       /admin/rooms/{id} [delete]
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.rooms.DeleteRoom(c.Request.Context(), id); err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, nil)
}

// UploadRoomAvatar godoc
// @Summary      Upload ảnh phòng
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "Room ID"
// @Param        file  formData  file  true  "Ảnh"
// @Success      200  {object}  response.Response{data=dto.RoomAvatarResponse}
// @Router       /admin/rooms/{id}/avatar [post]
func (rc *RoomController) UploadRoomAvatar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	url, err := rc.rooms.UploadAvatar(c.Request.Context(), id, src)
	if err != nil {
		fail(c, err, nil)
		return
	}
	response.Success(c, dto.RoomAvatarResponse{URL: url})
}
