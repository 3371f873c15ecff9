package orders

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

// Process applies a vendor-side status update to the order with the given
// public order id. Status is overwritten as given; remarks when non-empty;
// preparation time when positive. Any status string is accepted; there is
// no transition guard.
func (s *Service) Process(orderID string, status, remarks string, preparationTime int) (*models.Order, error) {
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

	order.OrderStatus = status
	if remarks != "" {
		order.Remarks = remarks
	}
	if preparationTime > 0 {
		order.PreparationTime = preparationTime
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return &order, nil
}
