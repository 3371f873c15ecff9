// Package cart mutates a customer's cart. A cart is the customer's set of
// {foodItem, unit} lines; units are always positive once persisted, and a
// non-positive requested unit removes the line.
package cart

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrFoodItemNotFound = errors.New("food item not found")
)

// Manager performs cart operations against the store.
type Manager struct {
	db *gorm.DB
}

// NewManager creates a cart manager.
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// AddOrUpdateLine upserts or removes the cart line for foodItemID.
// unit > 0 overwrites an existing line's unit or appends a new line;
// unit <= 0 removes the line if present (no-op otherwise). Returns the
// resulting cart with food item details resolved.
func (m *Manager) AddOrUpdateLine(customerID, foodItemID uint, unit int) ([]models.CartItem, error) {
	var customer models.Customer
	if err := m.db.First(&customer, customerID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	var foodItem models.FoodItem
	if err := m.db.First(&foodItem, foodItemID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrFoodItemNotFound
		}
		return nil, fmt.Errorf("load food item: %w", err)
	}

	var line models.CartItem
	err := m.db.Where("customer_id = ? AND food_item_id = ?", customerID, foodItemID).
		First(&line).Error
	switch {
	case err == nil:
		if unit > 0 {
			line.Unit = unit
			if err := m.db.Save(&line).Error; err != nil {
				return nil, fmt.Errorf("update cart line: %w", err)
			}
		} else {
			if err := m.db.Delete(&line).Error; err != nil {
				return nil, fmt.Errorf("remove cart line: %w", err)
			}
		}
	case gorm.IsRecordNotFoundError(err):
		if unit > 0 {
			line = models.CartItem{CustomerID: customerID, FoodItemID: foodItemID, Unit: unit}
			if err := m.db.Create(&line).Error; err != nil {
				return nil, fmt.Errorf("append cart line: %w", err)
			}
		}
		// unit <= 0 with no existing line is a no-op
	default:
		return nil, fmt.Errorf("load cart line: %w", err)
	}

	return m.resolvedCart(customerID)
}

// Get returns the customer's cart with food item details resolved.
func (m *Manager) Get(customerID uint) ([]models.CartItem, error) {
	var customer models.Customer
	if err := m.db.First(&customer, customerID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	return m.resolvedCart(customerID)
}

// Clear removes every line from the customer's cart and returns the
// customer record with the now empty cart.
func (m *Manager) Clear(customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := m.db.First(&customer, customerID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	if err := m.db.Where("customer_id = ?", customerID).Delete(models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	customer.Cart = []models.CartItem{}
	return &customer, nil
}

func (m *Manager) resolvedCart(customerID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := m.db.Preload("FoodItem").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}
