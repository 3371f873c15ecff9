package catalog

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

// Search reads look only at serviceable vendors in the requested pin code.

// FoodAvailability returns serviceable vendors in the pin code, best
// rated first, with their food items resolved.
func (s *Service) FoodAvailability(pinCode string) ([]models.Vendor, error) {
	out := []models.Vendor{}
	err := s.db.Preload("FoodItems").
		Where("pin_code = ? AND service_available = ?", pinCode, true).
		Order("rating desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("food availability: %w", err)
	}
	return out, nil
}

// TopRestaurant returns the best rated serviceable vendor in the pin code.
func (s *Service) TopRestaurant(pinCode string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.db.
		Where("pin_code = ? AND service_available = ?", pinCode, true).
		Order("rating desc").
		First(&vendor).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("top restaurant: %w", err)
	}
	return &vendor, nil
}

// FoodIn30Minutes returns food items preparable within 30 minutes across
// serviceable vendors in the pin code.
func (s *Service) FoodIn30Minutes(pinCode string) ([]models.FoodItem, error) {
	out := []models.FoodItem{}
	err := s.db.
		Joins("JOIN vendors ON vendors.id = food_items.vendor_id").
		Where("vendors.pin_code = ? AND vendors.service_available = ? AND food_items.preparation_time <= ?",
			pinCode, true, 30).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("food in 30 minutes: %w", err)
	}
	return out, nil
}

// SearchFoodItems returns every food item sold by serviceable vendors in
// the pin code.
func (s *Service) SearchFoodItems(pinCode string) ([]models.FoodItem, error) {
	out := []models.FoodItem{}
	err := s.db.
		Joins("JOIN vendors ON vendors.id = food_items.vendor_id").
		Where("vendors.pin_code = ? AND vendors.service_available = ?", pinCode, true).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("search food items: %w", err)
	}
	return out, nil
}

// RestaurantByID returns a vendor with its food items resolved.
func (s *Service) RestaurantByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Preload("FoodItems").First(&vendor, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("load restaurant: %w", err)
	}
	return &vendor, nil
}
