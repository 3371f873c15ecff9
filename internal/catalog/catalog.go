// Package catalog serves the menu side of the marketplace: vendor food
// item management and the customer-facing search reads.
package catalog

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/models"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
)

// Service performs catalog operations against the store.
type Service struct {
	db *gorm.DB
}

// NewService creates a catalog service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FoodItemInput holds the vendor-supplied fields of a new food item.
type FoodItemInput struct {
	Name            string  `json:"name" form:"name" binding:"required"`
	Description     string  `json:"description" form:"description" binding:"required"`
	Category        string  `json:"category" form:"category"`
	FoodType        string  `json:"foodType" form:"foodType" binding:"required"`
	PreparationTime int     `json:"preparationTime" form:"preparationTime"`
	Price           float64 `json:"price" form:"price" binding:"required,gte=0"`
}

// AddFoodItem creates a food item owned by the vendor.
func (s *Service) AddFoodItem(vendorID uint, in FoodItemInput, images []string) (*models.FoodItem, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, vendorID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("load vendor: %w", err)
	}

	item := models.FoodItem{
		VendorID:        vendorID,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		FoodType:        in.FoodType,
		PreparationTime: in.PreparationTime,
		Price:           in.Price,
		Rating:          0,
		Images:          models.StringList(images),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create food item: %w", err)
	}
	return &item, nil
}

// ListFoodItems returns the vendor's food items.
func (s *Service) ListFoodItems(vendorID uint) ([]models.FoodItem, error) {
	out := []models.FoodItem{}
	if err := s.db.Where("vendor_id = ?", vendorID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return out, nil
}
