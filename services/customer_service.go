package services

import (
	"context"
	"strings"

	"github.com/leenx3/Stayease-hotel/dto"
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// ListCustomers trả về khách kèm số booking hiện có
func (s *CustomerService) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	var customers []dto.CustomerResponse
	err := s.db.WithContext(ctx).Model(&models.Customer{}).
		Select("customers.id, customers.name, customers.email, COUNT(bookings.id) AS booking_count").
		Joins("LEFT JOIN bookings ON bookings.customer_id = customers.id").
		Group("customers.id, customers.name, customers.email").
		Order("customers.id").
		Scan(&customers).Error
	if err != nil {
		return nil, apperrors.DBError("Không thể lấy danh sách khách hàng", err)
	}
	return customers, nil
}

// upsertCustomer lấy hoặc tạo khách theo email.
// Tên chỉ được ghi khi khách chưa có tên, không bao giờ ghi đè tên đã có.
func upsertCustomer(tx *gorm.DB, name, email string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	customer := models.Customer{Name: name, Email: email}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&customer)
	if res.Error != nil {
		return nil, apperrors.DBError("Không thể lưu thông tin khách", res.Error)
	}
	if res.RowsAffected == 1 {
		return &customer, nil
	}

	var existing models.Customer
	if err := tx.Where("email = ?", email).First(&existing).Error; err != nil {
		return nil, apperrors.DBError("Không thể lấy thông tin khách", err)
	}
	if existing.Name == "" && name != "" {
		if err := tx.Model(&existing).Update("name", name).Error; err != nil {
			return nil, apperrors.DBError("Không thể cập nhật tên khách", err)
		}
		existing.Name = name
	}
	return &existing, nil
}

// deleteCustomerIfOrphan xóa khách khi không còn booking nào
func deleteCustomerIfOrphan(tx *gorm.DB, customerID uint) (bool, error) {
	var remaining int64
	if err := tx.Model(&models.Booking{}).Where("customer_id = ?", customerID).Count(&remaining).Error; err != nil {
		return false, apperrors.DBError("Không thể đếm booking của khách", err)
	}
	if remaining > 0 {
		return false, nil
	}
	if err := tx.Delete(&models.Customer{}, customerID).Error; err != nil {
		return false, apperrors.DBError("Không thể xóa khách", err)
	}
	return true, nil
}
