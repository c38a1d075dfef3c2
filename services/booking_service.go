package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leenx3/Stayease-hotel/builders"
	"github.com/leenx3/Stayease-hotel/commands"
	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/services/notification"
	"github.com/leenx3/Stayease-hotel/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBookingInput là dữ liệu đã được parse cho việc tạo booking
type CreateBookingInput struct {
	Name     string
	Email    string
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// SubmitBookingInput là dữ liệu thô từ form đặt phòng
type SubmitBookingInput struct {
	Name     string
	Email    string
	RoomID   *uint
	RoomType string
	CheckIn  string
	CheckOut string
	Guests   int
}

// BookingService quản lý vòng đời booking: tạo, sửa, xóa, hoàn thành
type BookingService struct {
	db           *gorm.DB
	rdb          *redis.Client
	locker       RoomLocker
	notifier     notification.Service
	availability *AvailabilityService
	logger       logger.Logger
	now          func() time.Time
}

type BookingServiceOptions struct {
	DB           *gorm.DB
	Redis        *redis.Client
	Locker       RoomLocker
	Notifier     notification.Service
	Availability *AvailabilityService
	Logger       logger.Logger
	Now          func() time.Time
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Locker == nil {
		opts.Locker = NewLocalRoomLocker()
	}
	if opts.Availability == nil {
		opts.Availability = NewAvailabilityService(AvailabilityServiceOptions{
			DB:     opts.DB,
			Logger: opts.Logger,
			Now:    opts.Now,
		})
	}
	return &BookingService{
		db:           opts.DB,
		rdb:          opts.Redis,
		locker:       opts.Locker,
		notifier:     opts.Notifier,
		availability: opts.Availability,
		logger:       opts.Logger,
		now:          opts.Now,
	}
}

// CreateBooking là đường duy nhất để tạo booking.
// Thứ tự kiểm tra: tên/email, khoảng ngày, phòng tồn tại, sức chứa, trùng lịch.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if err := validator.ValidateCustomerInfo(in.Name, in.Email); err != nil {
		return nil, err
	}
	if err := validator.ValidateDateRange(in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}
	if in.Guests < 1 {
		in.Guests = constants.DefaultGuests
	}

	unlock, err := s.locker.Lock(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var booking *models.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, in.RoomID)
		if err != nil {
			return err
		}
		if err := validator.ValidateCapacity(room, in.Guests); err != nil {
			return err
		}
		busy, err := hasOverlap(tx, room.ID, in.CheckIn, in.CheckOut, 0)
		if err != nil {
			return err
		}
		if busy {
			return apperrors.RoomUnavailable("Phòng đã được đặt trong khoảng thời gian này")
		}

		customer, err := upsertCustomer(tx, in.Name, in.Email)
		if err != nil {
			return err
		}

		booking = builders.NewBookingBuilder().
			WithCustomer(customer).
			WithRoom(room).
			WithStay(in.CheckIn, in.CheckOut).
			WithGuests(in.Guests).
			CompletedIfBefore(s.now()).
			Build()
		if err := commands.NewCreateBookingCommand(booking, tx).Execute(); err != nil {
			return apperrors.DBError("Không thể tạo booking", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("is_available", false).Error; err != nil {
			return apperrors.DBError("Không thể cập nhật trạng thái phòng", err)
		}
		booking.Room.IsAvailable = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo booking %d: phòng %s, %s -> %s, %.2f", booking.ID, booking.Room.RoomNumber,
		booking.CheckInDate, booking.CheckOutDate, booking.TotalPrice)
	s.afterChange(ctx, notification.NewEventBuilder(constants.EventBookingCreated).WithBooking(toLatestBooking(*booking)))
	return booking, nil
}

// SubmitBooking nhận dữ liệu từ form, chọn phòng theo id hoặc loại phòng rồi tạo booking
func (s *BookingService) SubmitBooking(ctx context.Context, in SubmitBookingInput) (*models.Booking, error) {
	if err := validator.ValidateCustomerInfo(in.Name, in.Email); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ParseDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	create := CreateBookingInput{
		Name:     in.Name,
		Email:    in.Email,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   in.Guests,
	}

	if in.RoomID != nil && *in.RoomID != 0 {
		create.RoomID = *in.RoomID
		return s.CreateBooking(ctx, create)
	}
	if strings.TrimSpace(in.RoomType) == "" {
		return nil, apperrors.MissingField("Vui lòng chọn phòng hoặc loại phòng")
	}

	// Phòng tìm được có thể bị request khác lấy mất trước khi ghi, khi đó quét lại
	for attempt := 0; attempt < constants.MaxTypeScanAttempts; attempt++ {
		room, ok, err := s.availability.FindAvailableRoom(ctx, RoomQuery{RoomType: in.RoomType}, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, s.noRoomOfType(ctx, in.RoomType)
		}
		create.RoomID = room.ID
		booking, err := s.CreateBooking(ctx, create)
		if apperrors.HasCode(err, apperrors.ErrCodeRoomUnavailable) {
			s.logger.Warn("Phòng %s vừa bị đặt, tìm phòng khác (lần %d)", room.RoomNumber, attempt+1)
			continue
		}
		return booking, err
	}
	return nil, apperrors.RoomUnavailable(fmt.Sprintf("Không còn phòng loại %s trống trong khoảng thời gian này", in.RoomType))
}

func (s *BookingService) noRoomOfType(ctx context.Context, roomType string) error {
	suggestion, exists, err := s.availability.SuggestRoomType(ctx, roomType)
	if err != nil {
		return err
	}
	if !exists && suggestion != "" {
		return apperrors.RoomUnavailable(fmt.Sprintf("Không có loại phòng %s. Có phải bạn muốn tìm %s?", roomType, suggestion))
	}
	if !exists {
		return apperrors.RoomUnavailable(fmt.Sprintf("Không có loại phòng %s", roomType))
	}
	return apperrors.RoomUnavailable(fmt.Sprintf("Không còn phòng loại %s trống trong khoảng thời gian này", suggestion))
}

// EditBooking đổi ngày của booking và tính lại tổng tiền theo giá phòng hiện tại.
// Sức chứa không được kiểm tra lại.
func (s *BookingService) EditBooking(ctx context.Context, id uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	current, err := s.findBooking(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, current.RoomID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var booking *models.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := s.findBooking(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}
		room, err := lockRoom(tx, b.RoomID)
		if err != nil {
			return err
		}
		busy, err := hasOverlap(tx, room.ID, checkIn, checkOut, b.ID)
		if err != nil {
			return err
		}
		if busy {
			return apperrors.RoomUnavailable("Phòng đã được đặt trong khoảng thời gian này")
		}

		b.CheckInDate = models.NewDate(checkIn)
		b.CheckOutDate = models.NewDate(checkOut)
		b.TotalPrice = models.PriceFor(b.Nights(), room.Price)
		if b.CheckOutDate.Before(models.DateOnly(s.now())) {
			b.IsCompleted = true
		}
		if err := commands.NewUpdateStayCommand(b, tx).Execute(); err != nil {
			return apperrors.DBError("Không thể cập nhật booking", err)
		}

		b.Room = *room
		if err := tx.First(&b.Customer, b.CustomerID).Error; err != nil {
			return apperrors.DBError("Không thể lấy thông tin khách", err)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã sửa booking %d: %s -> %s, %.2f", booking.ID, booking.CheckInDate, booking.CheckOutDate, booking.TotalPrice)
	s.afterChange(ctx, notification.NewEventBuilder(constants.EventBookingUpdated).WithBooking(toLatestBooking(*booking)))
	return booking, nil
}

// DeleteBooking xóa booking, trả phòng về trạng thái trống và dọn khách không còn booking
func (s *BookingService) DeleteBooking(ctx context.Context, id uint) error {
	current, err := s.findBooking(s.db.WithContext(ctx), id)
	if err != nil {
		return err
	}

	unlock, err := s.locker.Lock(ctx, current.RoomID)
	if err != nil {
		return err
	}
	defer unlock()

	var customerRemoved bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := s.findBooking(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", b.RoomID).Update("is_available", true).Error; err != nil {
			return apperrors.DBError("Không thể cập nhật trạng thái phòng", err)
		}
		if err := commands.NewDeleteBookingCommand(b.ID, tx).Execute(); err != nil {
			return apperrors.DBError("Không thể xóa booking", err)
		}
		customerRemoved, err = deleteCustomerIfOrphan(tx, b.CustomerID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("Đã xóa booking %d (xóa khách %d: %t)", id, current.CustomerID, customerRemoved)
	s.afterChange(ctx, notification.NewEventBuilder(constants.EventBookingDeleted).WithIDs(id))
	return nil
}

// MarkCompleted đánh dấu hoàn thành cho các booking, không kiểm tra ngày
func (s *BookingService) MarkCompleted(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id IN ?", ids).
		Update("is_completed", true)
	if res.Error != nil {
		return 0, apperrors.DBError("Không thể cập nhật trạng thái booking", res.Error)
	}
	s.afterChange(ctx, notification.NewEventBuilder(constants.EventBookingCompleted).WithIDs(ids...))
	return res.RowsAffected, nil
}

// CompleteExpiredBookings đánh dấu hoàn thành các booking đã qua ngày trả phòng
func (s *BookingService) CompleteExpiredBookings(ctx context.Context) (int64, error) {
	today := models.NewDate(s.now())

	var ids []uint
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("is_completed = ? AND check_out_date < ?", false, today).
		Pluck("id", &ids).Error; err != nil {
		return 0, apperrors.DBError("Không thể lấy booking đã hết hạn", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.MarkCompleted(ctx, ids)
}

// GetBooking lấy chi tiết booking cho trang xác nhận
func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.findBooking(s.db.WithContext(ctx).Preload("Customer").Preload("Room"), id)
}

// ListBookings trả về danh sách booking (mới nhất trước), tổng số và tổng doanh thu của mọi booking
func (s *BookingService) ListBookings(ctx context.Context, f dto.BookingListFilters) ([]models.Booking, int64, float64, error) {
	db := s.db.WithContext(ctx)

	q := db.Model(&models.Booking{})
	if f.Completed != nil {
		q = q.Where("is_completed = ?", *f.Completed)
	}
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("customer_id IN (?) OR room_id IN (?)",
			db.Model(&models.Customer{}).Select("id").Where("LOWER(name) LIKE ?", pattern),
			db.Model(&models.Room{}).Select("id").Where("LOWER(room_number) LIKE ?", pattern))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, apperrors.DBError("Không thể đếm booking", err)
	}

	q = q.Preload("Customer").Preload("Room").Order("created_at DESC, id DESC")
	if f.Limit > 0 {
		page := f.Page
		if page < 0 {
			page = 0
		}
		q = q.Offset(page * f.Limit).Limit(f.Limit)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, 0, 0, apperrors.DBError("Không thể lấy danh sách booking", err)
	}

	income, err := s.TotalIncome(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	return bookings, total, income, nil
}

// TotalIncome là tổng total_price của mọi booking
func (s *BookingService) TotalIncome(ctx context.Context) (float64, error) {
	var income float64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&income).Error; err != nil {
		return 0, apperrors.DBError("Không thể tính doanh thu", err)
	}
	return income, nil
}

// LatestBookings trả về feed booking mới nhất, lấy từ Redis nếu có
func (s *BookingService) LatestBookings(ctx context.Context, limit int) ([]dto.LatestBooking, error) {
	if limit <= 0 {
		limit = constants.DefaultFeedLimit
	}
	if limit > constants.MaxFeedLimit {
		limit = constants.MaxFeedLimit
	}

	// Version được đọc trước khi truy vấn DB, nên feed cũ chỉ có thể ghi vào key đã bị bỏ
	key, err := s.feedKey(ctx)
	if err != nil {
		s.logger.Warn("Lỗi khi đọc version feed booking: %v", err)
	}

	var feed []dto.LatestBooking
	found := false
	if key != "" {
		found, err = GetFromRedis(ctx, s.rdb, key, &feed)
		if err != nil {
			s.logger.Warn("Lỗi khi đọc feed booking từ Redis: %v", err)
		}
	}
	if !found {
		var bookings []models.Booking
		if err := s.db.WithContext(ctx).
			Preload("Customer").Preload("Room").
			Order("created_at DESC, id DESC").
			Limit(constants.MaxFeedLimit).
			Find(&bookings).Error; err != nil {
			return nil, apperrors.DBError("Không thể lấy danh sách booking", err)
		}
		feed = make([]dto.LatestBooking, 0, len(bookings))
		for _, b := range bookings {
			feed = append(feed, toLatestBooking(b))
		}
		if key != "" {
			if err := SetToRedis(ctx, s.rdb, key, feed, constants.LatestBookingsTTL); err != nil {
				s.logger.Warn("Lỗi khi lưu feed booking vào Redis: %v", err)
			}
		}
	}

	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

// feedKey trả về key cache của version feed hiện tại, rỗng khi không có Redis
func (s *BookingService) feedKey(ctx context.Context) (string, error) {
	if s.rdb == nil {
		return "", nil
	}
	version, err := s.rdb.Get(ctx, constants.CacheKeyLatestBookingsVersion).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s:v%d", constants.CacheKeyLatestBookings, version), nil
}

// InvalidateFeed tăng version feed và xóa cache của version cũ
func (s *BookingService) InvalidateFeed(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	oldKey, err := s.feedKey(ctx)
	if err != nil {
		s.logger.Warn("Lỗi khi đọc version feed booking: %v", err)
	}
	if err := s.rdb.Incr(ctx, constants.CacheKeyLatestBookingsVersion).Err(); err != nil {
		s.logger.Warn("Lỗi khi tăng version feed booking: %v", err)
	}
	if oldKey == "" {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, oldKey); err != nil {
		s.logger.Warn("Lỗi khi xóa cache feed booking: %v", err)
	}
}

// afterChange xóa cache và gửi sự kiện websocket; lỗi chỉ được log
func (s *BookingService) afterChange(ctx context.Context, event *notification.EventBuilder) {
	s.InvalidateFeed(ctx)
	if s.notifier == nil {
		return
	}
	message, err := event.Build()
	if err != nil {
		s.logger.Error("Lỗi khi tạo sự kiện booking: %v", err)
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Warn("Lỗi gửi thông báo booking: %v", err)
	}
}

func (s *BookingService) findBooking(db *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Không tìm thấy booking", apperrors.ErrBookingNotFound)
		}
		return nil, apperrors.DBError("Không thể lấy thông tin booking", err)
	}
	return &booking, nil
}

// lockRoom đọc phòng với SELECT ... FOR UPDATE trong transaction
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
		return nil, roomLookupError(err)
	}
	return &room, nil
}

func toLatestBooking(b models.Booking) dto.LatestBooking {
	return dto.LatestBooking{
		ID:           b.ID,
		CustomerName: b.Customer.Name,
		RoomNumber:   b.Room.RoomNumber,
		RoomType:     b.Room.RoomType,
		CheckInDate:  b.CheckInDate.String(),
		CheckOutDate: b.CheckOutDate.String(),
		TotalPrice:   b.TotalPrice,
	}
}
