package accounts

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"lucito/internal/auth"
	"lucito/internal/models"
)

// VendorCreateInput holds the fields required to register a vendor.
type VendorCreateInput struct {
	Name      string   `json:"name" binding:"required"`
	OwnerName string   `json:"ownerName" binding:"required"`
	FoodType  []string `json:"foodType"`
	PinCode   string   `json:"pinCode" binding:"required"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
}

// VendorLoginInput holds vendor login credentials.
type VendorLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VendorProfileInput holds the editable vendor profile fields.
type VendorProfileInput struct {
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone" binding:"required"`
	FoodType []string `json:"foodType"`
}

// CreateVendor registers a vendor account. New vendors start with service
// unavailable and no rating.
func (s *Service) CreateVendor(in VendorCreateInput) (*models.Vendor, error) {
	var existing models.Vendor
	err := s.db.Where("email = ? OR phone = ?", in.Email, in.Phone).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("check existing vendor: %w", err)
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}

	vendor := models.Vendor{
		Name:             in.Name,
		OwnerName:        in.OwnerName,
		FoodType:         models.StringList(in.FoodType),
		PinCode:          in.PinCode,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		Password:         hash,
		Salt:             salt,
		ServiceAvailable: false,
		Rating:           0,
	}
	if err := s.db.Create(&vendor).Error; err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return &vendor, nil
}

// LoginVendor validates credentials and returns the account.
func (s *Service) LoginVendor(in VendorLoginInput) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Where("email = ?", in.Email).First(&vendor).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	if !auth.ValidatePassword(in.Password, vendor.Salt, vendor.Password) {
		return nil, ErrInvalidCredentials
	}
	return &vendor, nil
}

// VendorByID returns the vendor record.
func (s *Service) VendorByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	return &vendor, nil
}

// ListVendors returns all vendors.
func (s *Service) ListVendors() ([]models.Vendor, error) {
	out := []models.Vendor{}
	if err := s.db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return out, nil
}

// UpdateVendorProfile overwrites the vendor's profile fields.
func (s *Service) UpdateVendorProfile(id uint, in VendorProfileInput) (*models.Vendor, error) {
	vendor, err := s.VendorByID(id)
	if err != nil {
		return nil, err
	}

	vendor.Name = in.Name
	vendor.Address = in.Address
	vendor.Phone = in.Phone
	vendor.FoodType = models.StringList(in.FoodType)
	if err := s.db.Save(vendor).Error; err != nil {
		return nil, fmt.Errorf("save vendor: %w", err)
	}
	return vendor, nil
}

// ToggleVendorService flips the vendor's service availability.
func (s *Service) ToggleVendorService(id uint) (*models.Vendor, error) {
	vendor, err := s.VendorByID(id)
	if err != nil {
		return nil, err
	}

	vendor.ServiceAvailable = !vendor.ServiceAvailable
	if err := s.db.Save(vendor).Error; err != nil {
		return nil, fmt.Errorf("save vendor: %w", err)
	}
	return vendor, nil
}

// AddVendorCoverImages appends uploaded cover image filenames.
func (s *Service) AddVendorCoverImages(id uint, images []string) (*models.Vendor, error) {
	vendor, err := s.VendorByID(id)
	if err != nil {
		return nil, err
	}

	vendor.CoverImages = append(vendor.CoverImages, images...)
	if err := s.db.Save(vendor).Error; err != nil {
		return nil, fmt.Errorf("save vendor: %w", err)
	}
	return vendor, nil
}
