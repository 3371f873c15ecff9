package orders

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucito/internal/database"
	"lucito/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a single conn keeps the in-memory database alive across queries
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seed(t *testing.T, db *gorm.DB) (customer models.Customer, f1, f2 models.FoodItem) {
	t.Helper()
	customer = models.Customer{Email: "jane@example.com", Phone: "1234567", Password: "x", Salt: "s", Verified: true}
	require.NoError(t, db.Create(&customer).Error)

	f1 = models.FoodItem{VendorID: 7, Name: "Margherita", Description: "Pizza", FoodType: "veg", Price: 5.00}
	f2 = models.FoodItem{VendorID: 7, Name: "Tiramisu", Description: "Dessert", FoodType: "veg", Price: 3.00}
	require.NoError(t, db.Create(&f1).Error)
	require.NoError(t, db.Create(&f2).Error)
	return customer, f1, f2
}

func TestCreateComputesTotalFromCatalogPrices(t *testing.T) {
	db := newTestDB(t)
	customer, f1, f2 := seed(t, db)
	svc := NewService(db)

	order, err := svc.Create(customer.ID, []LineInput{
		{ID: f1.ID, Unit: 2},
		{ID: f2.ID, Unit: 1},
	})
	require.NoError(t, err)

	assert.InDelta(t, 13.00, order.TotalAmount, 1e-9)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, StatusWaiting, order.OrderStatus)
	assert.Equal(t, models.PaymentModeCOD, order.PaymentMode)
	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, f1.VendorID, order.VendorID)
}

func TestCreateDropsUnmatchedLines(t *testing.T) {
	db := newTestDB(t)
	customer, f1, _ := seed(t, db)
	svc := NewService(db)

	order, err := svc.Create(customer.ID, []LineInput{
		{ID: f1.ID, Unit: 2},
		{ID: 9999, Unit: 4},
	})
	require.NoError(t, err)

	assert.Len(t, order.Items, 1)
	assert.InDelta(t, 10.00, order.TotalAmount, 1e-9)
}

func TestCreateWithNoMatchingLines(t *testing.T) {
	db := newTestDB(t)
	customer, _, _ := seed(t, db)
	svc := NewService(db)

	_, err := svc.Create(customer.ID, []LineInput{{ID: 9998, Unit: 1}, {ID: 9999, Unit: 2}})
	assert.ErrorIs(t, err, ErrNothingToOrder)

	var count int
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order may be written when nothing matched")
}

func TestCreateWithEmptyRequest(t *testing.T) {
	db := newTestDB(t)
	customer, _, _ := seed(t, db)
	svc := NewService(db)

	_, err := svc.Create(customer.ID, nil)
	assert.ErrorIs(t, err, ErrNothingToOrder)
}

func TestCreateUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	_, f1, _ := seed(t, db)
	svc := NewService(db)

	_, err := svc.Create(9999, []LineInput{{ID: f1.ID, Unit: 1}})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateSnapshotsPriceOnOrderItems(t *testing.T) {
	db := newTestDB(t)
	customer, f1, _ := seed(t, db)
	svc := NewService(db)

	order, err := svc.Create(customer.ID, []LineInput{{ID: f1.ID, Unit: 3}})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 5.00, order.Items[0].Price, 1e-9)

	// a later catalog price change does not touch the placed order
	require.NoError(t, db.Model(&models.FoodItem{}).Where("id = ?", f1.ID).Update("price", 9.00).Error)
	fetched, err := svc.Get(order.OrderID)
	require.NoError(t, err)
	assert.InDelta(t, 15.00, fetched.TotalAmount, 1e-9)
	assert.InDelta(t, 5.00, fetched.Items[0].Price, 1e-9)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	customer, f1, f2 := seed(t, db)
	svc := NewService(db)

	created, err := svc.Create(customer.ID, []LineInput{
		{ID: f1.ID, Unit: 2},
		{ID: f2.ID, Unit: 1},
	})
	require.NoError(t, err)

	fetched, err := svc.Get(created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created.TotalAmount, fetched.TotalAmount)
	assert.Equal(t, StatusWaiting, fetched.OrderStatus)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Margherita", fetched.Items[0].FoodItem.Name)
}
