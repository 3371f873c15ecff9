package orders

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

// Get returns one order by public order id, items and food detail joined.
func (s *Service) Get(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Items.FoodItem").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	return &order, nil
}

// ListForCustomer returns every order the customer has placed; the empty
// slice when there are none.
func (s *Service) ListForCustomer(customerID uint) ([]models.Order, error) {
	out := []models.Order{}
	err := s.db.Preload("Items").Preload("Items.FoodItem").
		Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return out, nil
}

// ListForVendor returns every order owned by the vendor, items and food
// detail joined.
func (s *Service) ListForVendor(vendorID uint) ([]models.Order, error) {
	out := []models.Order{}
	err := s.db.Preload("Items").Preload("Items.FoodItem").
		Where("vendor_id = ?", vendorID).
		Order("id desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list vendor orders: %w", err)
	}
	return out, nil
}
