package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "backoffice.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&Role{},
		&User{},
		&Event{},
		&Look{},
		&Attendee{},
		&Order{},
		&OrderItem{},
		&Discount{},
		&RMA{},
		&RMAItem{},
	))
	return db
}

func TestEmailUniquenessIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)

	first := User{Email: "Bride@Example.com", Password: "hashed"}
	require.NoError(t, db.Create(&first).Error)
	assert.Equal(t, "bride@example.com", first.Email)

	second := User{Email: "BRIDE@EXAMPLE.COM", Password: "hashed"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, WrapDBError(err), ErrUniqueness)
}

func TestShopifyOrderIDUniqueness(t *testing.T) {
	db := openTestDB(t)

	user := User{Email: "buyer@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	shopifyID := "5550001111"
	first := Order{UserID: user.ID, ShopifyOrderID: &shopifyID, OrderType: []string{OrderTypeNewOrder}}
	require.NoError(t, db.Create(&first).Error)

	second := Order{UserID: user.ID, ShopifyOrderID: &shopifyID, OrderType: []string{OrderTypeResize}}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, WrapDBError(err), ErrUniqueness)

	// Orders without a platform id never collide with each other.
	third := Order{UserID: user.ID, OrderType: []string{OrderTypeNewOrder}}
	require.NoError(t, db.Create(&third).Error)
	fourth := Order{UserID: user.ID, OrderType: []string{OrderTypeNewOrder}}
	require.NoError(t, db.Create(&fourth).Error)
}

func TestRMANumberUniqueness(t *testing.T) {
	db := openTestDB(t)

	user := User{Email: "buyer@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	order := Order{UserID: user.ID, OrderType: []string{OrderTypeNewOrder}}
	require.NoError(t, db.Create(&order).Error)

	first := RMA{OrderID: order.ID, RMANumber: "RMA-0001", Type: []string{RMATypeDamaged, RMATypeExchange}}
	require.NoError(t, db.Create(&first).Error)

	second := RMA{OrderID: order.ID, RMANumber: "RMA-0001", Type: []string{RMATypeResize}}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, WrapDBError(err), ErrUniqueness)
}

func TestRMAStoredTypeSetSurvivesReload(t *testing.T) {
	db := openTestDB(t)

	user := User{Email: "buyer@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	order := Order{UserID: user.ID, OrderType: []string{OrderTypeNewOrder}}
	require.NoError(t, db.Create(&order).Error)

	rma := RMA{OrderID: order.ID, RMANumber: "RMA-0002", Type: []string{RMATypeDamaged, RMATypeExchange}}
	require.NoError(t, db.Create(&rma).Error)
	assert.Equal(t, RMAStatusPending, rma.Status)

	var reloaded RMA
	require.NoError(t, db.First(&reloaded, "id = ?", rma.ID).Error)
	assert.Equal(t, []string{RMATypeDamaged, RMATypeExchange}, []string(reloaded.Type))
	assert.Equal(t, RMAStatusPending, reloaded.Status)
}
