package models

import (
	"github.com/jinzhu/gorm"
)

// Vendor represents a restaurant account that owns food items and
// fulfills orders.
type Vendor struct {
	gorm.Model
	Name             string     `gorm:"not null" json:"name"`
	OwnerName        string     `gorm:"not null" json:"ownerName"`
	FoodType         StringList `gorm:"type:text" json:"foodType"`
	PinCode          string     `gorm:"not null;index" json:"pinCode"`
	Address          string     `json:"address"`
	Phone            string     `gorm:"not null" json:"phone"`
	Email            string     `gorm:"not null;unique_index" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Salt             string     `gorm:"not null" json:"-"`
	ServiceAvailable bool       `json:"serviceAvailable"`
	CoverImages      StringList `gorm:"type:text" json:"coverImages"`
	Rating           float64    `json:"rating"`

	FoodItems []FoodItem `gorm:"foreignkey:VendorID" json:"foodItems"`
}
