package accounts

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"lucito/internal/auth"
	"lucito/internal/models"
	"lucito/internal/notify"
)

// CustomerSignUpInput holds the fields required to open a customer account.
type CustomerSignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=7,max=13"`
	Password string `json:"password" binding:"required,min=6,max=12"`
}

// CustomerLoginInput holds customer login credentials.
type CustomerLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=12"`
}

// CustomerProfileInput holds the editable profile fields.
type CustomerProfileInput struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=6,max=64"`
}

// SignUpCustomer creates an unverified customer account, generates its
// first OTP and sends the code to the customer's phone.
func (s *Service) SignUpCustomer(in CustomerSignUpInput) (*models.Customer, error) {
	var existing models.Customer
	err := s.db.Where("email = ? OR phone = ?", in.Email, in.Phone).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("check existing customer: %w", err)
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}

	otp, expiry := notify.GenerateOTP()

	customer := models.Customer{
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hash,
		Salt:      salt,
		Verified:  false,
		OTP:       otp,
		OTPExpiry: expiry,
		Cart:      []models.CartItem{},
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.sms.SendOTP(otp, customer.Phone)
	return &customer, nil
}

// LoginCustomer validates credentials and returns the account.
func (s *Service) LoginCustomer(in CustomerLoginInput) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", in.Email).First(&customer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if !auth.ValidatePassword(in.Password, customer.Salt, customer.Password) {
		return nil, ErrInvalidCredentials
	}
	return &customer, nil
}

// CustomerByID returns the customer record.
func (s *Service) CustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Preload("Cart").Preload("Cart.FoodItem").First(&customer, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	return &customer, nil
}

// VerifyCustomer marks the account verified when the code matches and has
// not expired. Verifying an already verified account is a no-op.
func (s *Service) VerifyCustomer(id uint, otp int) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if customer.Verified {
		return &customer, nil
	}
	if customer.OTP != otp || customer.OTPExpiry.Before(time.Now()) {
		return nil, ErrInvalidOTP
	}

	customer.Verified = true
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &customer, nil
}

// RequestOTP regenerates the customer's OTP and sends it.
func (s *Service) RequestOTP(id uint) error {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("load customer: %w", err)
	}

	otp, expiry := notify.GenerateOTP()
	customer.OTP = otp
	customer.OTPExpiry = expiry
	if err := s.db.Save(&customer).Error; err != nil {
		return fmt.Errorf("save customer: %w", err)
	}

	s.sms.SendOTP(otp, customer.Phone)
	return nil
}

// UpdateCustomerProfile overwrites the customer's profile fields.
func (s *Service) UpdateCustomerProfile(id uint, in CustomerProfileInput) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	customer.FirstName = in.FirstName
	customer.LastName = in.LastName
	customer.Address = in.Address
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &customer, nil
}
