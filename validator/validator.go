package validator

import (
	"strconv"
	"strings"
	"time"

	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidateCustomerInfo kiểm tra tên và email của khách
func ValidateCustomerInfo(name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return errors.MissingField("Tên và email là bắt buộc")
	}
	return nil
}

// ParseDate đọc ngày theo định dạng YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.InvalidDateRange("Ngày không hợp lệ, vui lòng sử dụng định dạng YYYY-MM-DD", err)
	}
	return parsed, nil
}

// ParseDateRange đọc và kiểm tra cặp ngày nhận/trả phòng
func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := ValidateDateRange(in, out); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

// ValidateDateRange yêu cầu ngày trả phòng sau ngày nhận phòng ít nhất một đêm
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if models.NightsBetween(checkIn, checkOut) < 1 {
		return errors.InvalidDateRange("Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateCapacity kiểm tra số khách không vượt sức chứa phòng
func ValidateCapacity(room *models.Room, guests int) error {
	if !room.Fits(guests) {
		return errors.CapacityExceeded("Số khách vượt quá sức chứa của phòng")
	}
	return nil
}

// ValidateRoom validate thông tin phòng trước khi lưu
func ValidateRoom(room *models.Room) error {
	if err := room.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Thông tin phòng không hợp lệ", err)
	}
	return nil
}

// ParseGuests trả về số khách, mặc định 1 khi không đọc được
func ParseGuests(value string) int {
	guests, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || guests < 1 {
		return constants.DefaultGuests
	}
	return guests
}

// GuestCount là số khách gửi lên từ form hoặc JSON.
// Nhận cả số lẫn chuỗi, giá trị sai định dạng được đưa về mặc định.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	*g = GuestCount(ParseGuests(strings.Trim(string(data), `"`)))
	return nil
}

// UnmarshalParam dùng cho gin form binding
func (g *GuestCount) UnmarshalParam(param string) error {
	*g = GuestCount(ParseGuests(param))
	return nil
}

func (g GuestCount) Int() int {
	if g < 1 {
		return constants.DefaultGuests
	}
	return int(g)
}

// ParseOptionalInt trả về nil khi giá trị rỗng hoặc sai định dạng
func ParseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

// ParseOptionalFloat trả về nil khi giá trị rỗng hoặc sai định dạng
func ParseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseOptionalDate trả về nil khi ngày rỗng hoặc sai định dạng
func ParseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse(constants.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &d
}

// dateOnly là rule cho tag `dateonly` của gin binding
func dateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constants.DateLayout, value)
	return err == nil
}

// RegisterBindings đăng ký các rule tùy chỉnh vào validator của gin
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateonly", dateOnly)
}
