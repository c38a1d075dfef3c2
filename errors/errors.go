package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Booking errors
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeRoomUnavailable  ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Infrastructure errors
	ErrCodeLockTimeout ErrorCode = "LOCK_TIMEOUT"
	ErrCodeUpload      ErrorCode = "UPLOAD_FAILED"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ error, kể cả khi đã được wrap
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi code không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

func MissingField(message string) *AppError {
	return NewAppError(ErrCodeMissingField, message, nil)
}

func InvalidDateRange(message string, err error) *AppError {
	return NewAppError(ErrCodeInvalidDateRange, message, err)
}

func CapacityExceeded(message string) *AppError {
	return NewAppError(ErrCodeCapacityExceeded, message, nil)
}

func RoomUnavailable(message string) *AppError {
	return NewAppError(ErrCodeRoomUnavailable, message, nil)
}

func NotFound(message string, err error) *AppError {
	return NewAppError(ErrCodeNotFound, message, err)
}

// DBError bọc lỗi từ tầng lưu trữ
func DBError(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrLockNotAcquired = errors.New("room lock not acquired")
)
