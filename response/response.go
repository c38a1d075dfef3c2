package response

import (
	"net/http"

	"github.com/leenx3/Stayease-hotel/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorData giữ mã lỗi và dữ liệu người dùng đã nhập để client hiển thị lại form
type ErrorData struct {
	ErrorCode errors.ErrorCode `json:"errorCode"`
	Input     interface{}      `json:"input,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// AppError trả về response theo mã lỗi của AppError, kèm dữ liệu đã nhập
func AppError(c *gin.Context, err error, input interface{}) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	status := StatusFor(appErr.Code)
	if status == http.StatusInternalServerError {
		ServerError(c)
		return
	}
	c.JSON(status, Response{
		Code: 0,
		Mess: appErr.Message,
		Data: ErrorData{ErrorCode: appErr.Code, Input: input},
	})
}

// StatusFor ánh xạ mã lỗi sang HTTP status
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeMissingField,
		errors.ErrCodeInvalidDateRange,
		errors.ErrCodeCapacityExceeded,
		errors.ErrCodeValidation,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeDBDuplicate:
		return http.StatusConflict
	case errors.ErrCodeLockTimeout:
		return http.StatusServiceUnavailable
	case errors.ErrCodeUpload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
