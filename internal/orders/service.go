// Package orders builds orders from requested cart lines, tracks their
// vendor-side status and serves order reads.
package orders

import (
	"errors"

	"github.com/jinzhu/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrNothingToOrder   = errors.New("no requested line matches a catalog item")
)

// LineInput is one requested order line as sent by the client.
type LineInput struct {
	ID   uint `json:"_id"`
	Unit int  `json:"unit"`
}

// Service performs order operations against the store.
type Service struct {
	db *gorm.DB
}

// NewService creates an order service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}
