package reconcile

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

func openStoreDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "backoffice.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Event{},
		&models.Look{},
		&models.Attendee{},
		&models.Order{},
		&models.OrderItem{},
		&models.Discount{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, createdAt time.Time) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", CreatedAt: createdAt}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func addAttendee(t *testing.T, db *gorm.DB, event models.Event, name string, active, invited bool) models.Attendee {
	t.Helper()
	attendee := models.Attendee{EventID: event.ID, FirstName: name, IsActive: true, Invite: invited}
	require.NoError(t, db.Create(&attendee).Error)
	if !active {
		require.NoError(t, db.Model(&attendee).Update("is_active", false).Error)
		attendee.IsActive = false
	}
	return attendee
}

func TestEventsWithQualifyingParties(t *testing.T) {
	db := openStoreDB(t)

	customerID := "7700112233"
	owner := models.User{Email: "owner@example.com", Password: "hashed", ShopifyCustomerID: &customerID}
	require.NoError(t, db.Create(&owner).Error)

	cutoff := time.Now()

	event := models.Event{
		Name:     "Thompson Wedding",
		EventAt:  time.Now().AddDate(0, 6, 0),
		Type:     models.EventTypeWedding,
		IsActive: true,
		UserID:   owner.ID,
	}
	require.NoError(t, db.Create(&event).Error)

	// Big enough parties on a cancelled event and on a past event must
	// never qualify.
	cancelled := models.Event{
		Name:     "Cancelled Prom",
		EventAt:  time.Now().AddDate(0, 3, 0),
		Type:     models.EventTypeProm,
		IsActive: true,
		UserID:   owner.ID,
	}
	require.NoError(t, db.Create(&cancelled).Error)
	require.NoError(t, db.Model(&cancelled).Update("is_active", false).Error)
	past := models.Event{
		Name:     "Last Year",
		EventAt:  time.Now().AddDate(-1, 0, 0),
		Type:     models.EventTypeWedding,
		IsActive: true,
		UserID:   owner.ID,
	}
	require.NoError(t, db.Create(&past).Error)
	for i := 0; i < 4; i++ {
		addAttendee(t, db, cancelled, "guest", true, true)
		addAttendee(t, db, past, "guest", true, true)
	}

	addAttendee(t, db, event, "best man", true, true)
	addAttendee(t, db, event, "groomsman one", true, true)
	addAttendee(t, db, event, "groomsman two", true, true)
	addAttendee(t, db, event, "dropped out", false, true)
	addAttendee(t, db, event, "plus one", true, false)

	// Three countable attendees: inactive and uninvited rows do not count.
	events, err := EventsWithQualifyingParties(db, 4, cutoff)
	require.NoError(t, err)
	assert.Empty(t, events)

	addAttendee(t, db, event, "groomsman three", true, true)

	events, err = EventsWithQualifyingParties(db, 4, cutoff)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, "Thompson Wedding", events[0].Name)
	require.NotNil(t, events[0].User)
	assert.Equal(t, []string{customerID}, DistinctCustomerIDs(events))
}

func TestUsedPersonalDiscountsSelection(t *testing.T) {
	db := openStoreDB(t)

	owner := createUser(t, db, "owner@example.com", time.Now())
	event := models.Event{Name: "Wilson Wedding", EventAt: time.Now().AddDate(0, 2, 0), Type: models.EventTypeWedding, IsActive: true, UserID: owner.ID}
	require.NoError(t, db.Create(&event).Error)
	attendee := addAttendee(t, db, event, "bridesmaid", true, true)

	base := time.Now().Add(-time.Hour)
	discounts := []models.Discount{
		{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "VV-OLD", Used: true, CreatedAt: base},
		{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "VV-NEW", Used: true, CreatedAt: base.Add(time.Minute)},
		{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "VV-UNUSED", Used: false, CreatedAt: base},
		{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "OTHER-USED", Used: true, CreatedAt: base},
	}
	for i := range discounts {
		require.NoError(t, db.Create(&discounts[i]).Error)
	}

	got, err := UsedPersonalDiscounts(db, "VV-")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "VV-NEW", got[0].Code)
	assert.Equal(t, "VV-OLD", got[1].Code)
}

func TestUnfixedInactiveLooksSkipsFixed(t *testing.T) {
	db := openStoreDB(t)

	owner := createUser(t, db, "owner@example.com", time.Now())
	looks := []models.Look{
		{Name: "still live", UserID: owner.ID, IsActive: true},
		{Name: "needs cleanup", UserID: owner.ID, IsActive: true},
		{Name: "already cleaned", UserID: owner.ID, IsActive: true, Fixed: true},
	}
	for i := range looks {
		require.NoError(t, db.Create(&looks[i]).Error)
	}
	require.NoError(t, db.Model(&looks[1]).Update("is_active", false).Error)
	require.NoError(t, db.Model(&looks[2]).Update("is_active", false).Error)

	got, err := UnfixedInactiveLooks(db)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "needs cleanup", got[0].Name)
}

func TestDedupeUsersMergesPair(t *testing.T) {
	db := openStoreDB(t)

	// The unique index on email postdates the duplicate rows this job
	// exists to clean up, so the fixture drops it first.
	require.NoError(t, db.Migrator().DropIndex(&models.User{}, "Email"))

	keeper := createUser(t, db, "bride@example.com", time.Now().Add(-48*time.Hour))
	dupe := createUser(t, db, "bride@example.com", time.Now())
	bystander := createUser(t, db, "other@example.com", time.Now())

	event := models.Event{Name: "Garcia Wedding", EventAt: time.Now().AddDate(0, 4, 0), Type: models.EventTypeWedding, IsActive: true, UserID: dupe.ID}
	require.NoError(t, db.Create(&event).Error)
	look := models.Look{Name: "bridal party", UserID: dupe.ID, IsActive: true}
	require.NoError(t, db.Create(&look).Error)
	order := models.Order{UserID: dupe.ID, OrderType: []string{models.OrderTypeNewOrder}}
	require.NoError(t, db.Create(&order).Error)
	attendee := models.Attendee{EventID: event.ID, FirstName: "bride", UserID: &dupe.ID, IsActive: true}
	require.NoError(t, db.Create(&attendee).Error)

	merged, err := DedupeUsers(db, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, merged)

	var remaining []models.User
	require.NoError(t, db.Where("email = ?", "bride@example.com").Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keeper.ID, remaining[0].ID)

	require.NoError(t, db.First(&event, "id = ?", event.ID).Error)
	assert.Equal(t, keeper.ID, event.UserID)
	require.NoError(t, db.First(&look, "id = ?", look.ID).Error)
	assert.Equal(t, keeper.ID, look.UserID)
	require.NoError(t, db.First(&order, "id = ?", order.ID).Error)
	assert.Equal(t, keeper.ID, order.UserID)
	require.NoError(t, db.First(&attendee, "id = ?", attendee.ID).Error)
	require.NotNil(t, attendee.UserID)
	assert.Equal(t, keeper.ID, *attendee.UserID)

	var untouched models.User
	require.NoError(t, db.First(&untouched, "id = ?", bystander.ID).Error)
}

func TestDedupeUsersAbortsOnLargerGroup(t *testing.T) {
	db := openStoreDB(t)
	require.NoError(t, db.Migrator().DropIndex(&models.User{}, "Email"))

	createUser(t, db, "triple@example.com", time.Now().Add(-2*time.Hour))
	createUser(t, db, "triple@example.com", time.Now().Add(-time.Hour))
	createUser(t, db, "triple@example.com", time.Now())

	merged, err := DedupeUsers(db, zerolog.Nop())
	assert.Equal(t, 0, merged)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedDuplicateCount)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "triple@example.com").Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
