package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

// Create builds and persists an order from the requested lines.
//
// All referenced food items are resolved in one batch read and the total
// is computed from the prices returned by that read. Lines whose id
// matches no catalog item are silently dropped. When nothing matches,
// ErrNothingToOrder is returned and no order is written.
func (s *Service) Create(customerID uint, lines []LineInput) (*models.Order, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}

	var foodItems []models.FoodItem
	if len(ids) > 0 {
		if err := s.db.Where("id IN (?)", ids).Find(&foodItems).Error; err != nil {
			return nil, fmt.Errorf("load food items: %w", err)
		}
	}
	byID := make(map[uint]models.FoodItem, len(foodItems))
	for _, item := range foodItems {
		byID[item.ID] = item
	}

	var (
		orderItems  []models.OrderItem
		totalAmount float64
		vendorID    uint
	)
	for _, line := range lines {
		foodItem, ok := byID[line.ID]
		if !ok {
			continue // dropped, not an error
		}
		totalAmount += foodItem.Price * float64(line.Unit)
		orderItems = append(orderItems, models.OrderItem{
			FoodItemID: foodItem.ID,
			FoodItem:   foodItem,
			Unit:       line.Unit,
			Price:      foodItem.Price,
		})
		if vendorID == 0 {
			vendorID = foodItem.VendorID
		}
	}
	if len(orderItems) == 0 {
		return nil, ErrNothingToOrder
	}

	order := models.Order{
		OrderID:     uuid.NewString(),
		CustomerID:  customer.ID,
		VendorID:    vendorID,
		Items:       orderItems,
		TotalAmount: totalAmount,
		OrderDate:   time.Now(),
		PaymentMode: models.PaymentModeCOD,
		OrderStatus: StatusWaiting,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}
