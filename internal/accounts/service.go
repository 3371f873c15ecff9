// Package accounts owns customer and vendor identities: sign-up, login,
// OTP verification and profile maintenance.
package accounts

import (
	"errors"

	"github.com/jinzhu/gorm"

	"lucito/internal/notify"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrDuplicateAccount   = errors.New("email or phone already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
)

// Service performs account operations against the store. OTP codes go out
// through the SMS client, fire-and-forget.
type Service struct {
	db  *gorm.DB
	sms *notify.SMSClient
}

// NewService creates an account service.
func NewService(db *gorm.DB, sms *notify.SMSClient) *Service {
	return &Service{db: db, sms: sms}
}
