package accounts

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucito/internal/database"
	"lucito/internal/models"
	"lucito/internal/notify"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a single conn keeps the in-memory database alive across queries
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	// empty credentials: SMS client logs codes instead of sending
	return NewService(db, notify.NewSMSClient("", "", "")), db
}

func TestSignUpCustomer(t *testing.T) {
	svc, db := newService(t)

	customer, err := svc.SignUpCustomer(CustomerSignUpInput{
		Email: "jane@example.com", Phone: "1234567", Password: "hunter22",
	})
	require.NoError(t, err)

	assert.False(t, customer.Verified)
	assert.NotEqual(t, "hunter22", customer.Password, "password must be hashed")
	assert.NotEmpty(t, customer.Salt)
	assert.GreaterOrEqual(t, customer.OTP, 100000)
	assert.True(t, customer.OTPExpiry.After(time.Now()))

	var count int
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, 1, count)
}

func TestSignUpCustomerDuplicate(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "7654321", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	_, err = svc.SignUpCustomer(CustomerSignUpInput{Email: "other@example.com", Phone: "1234567", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestLoginCustomer(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	got, err := svc.LoginCustomer(CustomerLoginInput{Email: "jane@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.LoginCustomer(CustomerLoginInput{Email: "jane@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginCustomer(CustomerLoginInput{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestVerifyCustomer(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.VerifyCustomer(created.ID, created.OTP+1)
	assert.ErrorIs(t, err, ErrInvalidOTP)

	verified, err := svc.VerifyCustomer(created.ID, created.OTP)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	// already verified: any code is accepted as a no-op
	again, err := svc.VerifyCustomer(created.ID, 0)
	require.NoError(t, err)
	assert.True(t, again.Verified)
}

func TestVerifyCustomerExpiredOTP(t *testing.T) {
	svc, db := newService(t)

	created, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Customer{}).Where("id = ?", created.ID).
		Update("otp_expiry", time.Now().Add(-time.Minute)).Error)

	_, err = svc.VerifyCustomer(created.ID, created.OTP)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestRequestOTPRegeneratesCode(t *testing.T) {
	svc, db := newService(t)

	created, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Customer{}).Where("id = ?", created.ID).
		Update("otp_expiry", time.Now().Add(-time.Minute)).Error)

	require.NoError(t, svc.RequestOTP(created.ID))

	var reloaded models.Customer
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.True(t, reloaded.OTPExpiry.After(time.Now()))
}

func TestUpdateCustomerProfile(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.SignUpCustomer(CustomerSignUpInput{Email: "jane@example.com", Phone: "1234567", Password: "hunter22"})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomerProfile(created.ID, CustomerProfileInput{
		FirstName: "Jane", LastName: "Doe", Address: "12 High Street",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "12 High Street", updated.Address)
}

func TestCreateVendor(t *testing.T) {
	svc, _ := newService(t)

	vendor, err := svc.CreateVendor(VendorCreateInput{
		Name: "Luigi's", OwnerName: "Luigi", FoodType: []string{"italian", "pizza"},
		PinCode: "560001", Phone: "5550001", Email: "luigi@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.False(t, vendor.ServiceAvailable)
	assert.Zero(t, vendor.Rating)
	assert.Equal(t, models.StringList{"italian", "pizza"}, vendor.FoodType)

	_, err = svc.CreateVendor(VendorCreateInput{
		Name: "Copy", OwnerName: "X", PinCode: "560001",
		Phone: "5550001", Email: "other@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestLoginVendor(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateVendor(VendorCreateInput{
		Name: "Luigi's", OwnerName: "Luigi", PinCode: "560001",
		Phone: "5550001", Email: "luigi@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	got, err := svc.LoginVendor(VendorLoginInput{Email: "luigi@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.LoginVendor(VendorLoginInput{Email: "luigi@example.com", Password: "wrong12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestToggleVendorService(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateVendor(VendorCreateInput{
		Name: "Luigi's", OwnerName: "Luigi", PinCode: "560001",
		Phone: "5550001", Email: "luigi@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	on, err := svc.ToggleVendorService(created.ID)
	require.NoError(t, err)
	assert.True(t, on.ServiceAvailable)

	off, err := svc.ToggleVendorService(created.ID)
	require.NoError(t, err)
	assert.False(t, off.ServiceAvailable)
}

func TestAddVendorCoverImages(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.CreateVendor(VendorCreateInput{
		Name: "Luigi's", OwnerName: "Luigi", PinCode: "560001",
		Phone: "5550001", Email: "luigi@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := svc.AddVendorCoverImages(created.ID, []string{"a.jpg"})
	require.NoError(t, err)
	updated, err = svc.AddVendorCoverImages(created.ID, []string{"b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"a.jpg", "b.jpg"}, updated.CoverImages)
}
