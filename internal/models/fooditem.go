package models

import (
	"github.com/jinzhu/gorm"
)

// FoodItem represents a dish offered by a vendor. Price is read live at
// order-build time; it is not frozen on the catalog side.
type FoodItem struct {
	gorm.Model
	VendorID        uint       `gorm:"index" json:"vendorId"`
	Name            string     `gorm:"not null" json:"name"`
	Description     string     `gorm:"not null" json:"description"`
	Category        string     `json:"category"`
	FoodType        string     `gorm:"not null" json:"foodType"`
	PreparationTime int        `json:"preparationTime"` // minutes
	Price           float64    `gorm:"not null" json:"price"`
	Rating          float64    `json:"rating"`
	Images          StringList `gorm:"type:text" json:"images"`
}
