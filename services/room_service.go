package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

const roomAvatarFolder = "rooms"

// ImageUploader upload ảnh và trả về url công khai
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	if u.cld == nil {
		return "", fmt.Errorf("cloudinary chưa được cấu hình")
	}
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// FeedInvalidator xóa cache feed booking khi dữ liệu phòng thay đổi
type FeedInvalidator interface {
	InvalidateFeed(ctx context.Context)
}

type RoomService struct {
	db       *gorm.DB
	locker   RoomLocker
	uploader ImageUploader
	feed     FeedInvalidator
	logger   logger.Logger
}

type RoomServiceOptions struct {
	DB       *gorm.DB
	Locker   RoomLocker
	Uploader ImageUploader
	Feed     FeedInvalidator
	Logger   logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Locker == nil {
		opts.Locker = NewLocalRoomLocker()
	}
	return &RoomService{
		db:       opts.DB,
		locker:   opts.Locker,
		uploader: opts.Uploader,
		feed:     opts.Feed,
		logger:   opts.Logger,
	}
}

// CreateRoom tạo phòng mới, số phòng không được trùng
func (s *RoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	room := models.Room{
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		RoomType:    strings.TrimSpace(req.RoomType),
		Price:       req.Price,
		Capacity:    req.Capacity,
		Description: req.Description,
		IsAvailable: true,
	}
	if room.Capacity == 0 {
		room.Capacity = models.DefaultRoomCapacity
	}
	if err := validator.ValidateRoom(&room); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		return nil, apperrors.DBError("Không thể kiểm tra số phòng", err)
	}
	if count > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBDuplicate,
			fmt.Sprintf("Số phòng %s đã tồn tại", room.RoomNumber), nil)
	}
	if err := db.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBDuplicate,
				fmt.Sprintf("Số phòng %s đã tồn tại", room.RoomNumber), err)
		}
		return nil, apperrors.DBError("Không thể tạo phòng", err)
	}
	s.logger.Info("Đã tạo %s", room.String())
	return &room, nil
}

// UpdateRoom cập nhật thông tin phòng. Đổi giá không làm thay đổi tổng tiền của booking đã có.
func (s *RoomService) UpdateRoom(ctx context.Context, id uint, req dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomType != nil {
		room.RoomType = strings.TrimSpace(*req.RoomType)
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(room).Updates(map[string]interface{}{
		"room_type":   room.RoomType,
		"price":       room.Price,
		"capacity":    room.Capacity,
		"description": room.Description,
	}).Error; err != nil {
		return nil, apperrors.DBError("Không thể cập nhật phòng", err)
	}
	s.invalidateFeed(ctx)
	return room, nil
}

// DeleteRoom xóa phòng cùng các booking của nó, khách không còn booking cũng bị xóa
func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	var removed int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, id)
		if err != nil {
			return err
		}

		var customerIDs []uint
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", room.ID).
			Distinct().Pluck("customer_id", &customerIDs).Error; err != nil {
			return apperrors.DBError("Không thể lấy booking của phòng", err)
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Booking{}).Error; err != nil {
			return apperrors.DBError("Không thể xóa booking của phòng", err)
		}
		for _, customerID := range customerIDs {
			ok, err := deleteCustomerIfOrphan(tx, customerID)
			if err != nil {
				return err
			}
			if ok {
				removed++
			}
		}
		if err := tx.Delete(room).Error; err != nil {
			return apperrors.DBError("Không thể xóa phòng", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidateFeed(ctx)
	s.logger.Info("Đã xóa phòng %d, xóa %d khách không còn booking", id, removed)
	return nil
}

func (s *RoomService) invalidateFeed(ctx context.Context) {
	if s.feed != nil {
		s.feed.InvalidateFeed(ctx)
	}
}

// ListRooms trả về tất cả phòng, sắp xếp theo số phòng
func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, apperrors.DBError("Không thể lấy danh sách phòng", err)
	}
	sortRooms(rooms)
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, roomLookupError(err)
	}
	return &room, nil
}

// UploadAvatar upload ảnh phòng và lưu url
func (s *RoomService) UploadAvatar(ctx context.Context, id uint, file io.Reader) (string, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return "", err
	}
	if s.uploader == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUpload, "Chưa cấu hình dịch vụ upload ảnh", nil)
	}

	uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	url, err := s.uploader.Upload(uploadCtx, file, roomAvatarFolder)
	if err != nil {
		s.logger.Error("Upload ảnh phòng %s thất bại: %v", room.RoomNumber, err)
		return "", apperrors.NewAppError(apperrors.ErrCodeUpload, "Upload thất bại", err)
	}

	if err := s.db.WithContext(ctx).Model(room).Update("avatar", url).Error; err != nil {
		return "", apperrors.DBError("Không thể lưu ảnh phòng", err)
	}
	return url, nil
}
