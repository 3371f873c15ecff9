package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Customer represents a customer account and its profile
type Customer struct {
	gorm.Model
	Email     string `gorm:"not null;unique_index" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
	Password  string `gorm:"not null" json:"-"`
	Salt      string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Verified  bool   `gorm:"not null" json:"verified"`

	// OTP verification state
	OTP       int       `json:"-"`
	OTPExpiry time.Time `json:"-"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Cart []CartItem `gorm:"foreignkey:CustomerID" json:"cart"`
}

// CartItem is a single cart line: a food item and how many units of it.
// Lines with Unit <= 0 are never persisted; a zero unit removes the line.
type CartItem struct {
	gorm.Model
	CustomerID uint     `gorm:"index" json:"-"`
	FoodItemID uint     `gorm:"not null" json:"foodItemId"`
	FoodItem   FoodItem `json:"foodItem"`
	Unit       int      `gorm:"not null" json:"unit"`
}
