package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Order represents a placed order. It is created once by the order builder
// and afterwards mutated only through the vendor-side status tracker.
type Order struct {
	gorm.Model
	OrderID    string `gorm:"not null;unique_index" json:"orderId"` // public correlation id
	CustomerID uint   `gorm:"index" json:"customerId"`
	VendorID   uint   `gorm:"index" json:"vendorId"`

	Items       []OrderItem `gorm:"foreignkey:OrderRef" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	OrderDate   time.Time   `gorm:"not null" json:"orderDate"`

	PaymentMode     string `json:"paymentMode"`
	PaymentResponse string `json:"paymentResponse"`

	OrderStatus     string `json:"orderStatus"`
	Remarks         string `json:"remarks"`
	PreparationTime int    `json:"preparationTime"` // minutes, vendor override
}

// OrderItem is one priced line of an order. Price is the catalog price
// snapshotted when the order was built.
type OrderItem struct {
	gorm.Model
	OrderRef   uint     `gorm:"index" json:"-"`
	FoodItemID uint     `gorm:"not null" json:"foodItemId"`
	FoodItem   FoodItem `json:"foodItem"`
	Unit       int      `gorm:"not null" json:"unit"`
	Price      float64  `gorm:"not null" json:"price"`
}

// PaymentModeCOD is the only payment mode in use.
const PaymentModeCOD = "COD"
