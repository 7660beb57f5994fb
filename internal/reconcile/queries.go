// Package reconcile holds the read queries and batch bodies shared by the
// operational jobs under cmd/jobs. Every job is a sequential pass with
// at-least-once semantics: a crash between a platform call and the
// write-back repeats the platform call on the next run.
package reconcile

import (
	"time"

	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

// UsedPersonalDiscounts returns redeemed discounts whose code carries the
// given prefix, newest first. This is the selection the platform coupon
// deactivation relies on.
func UsedPersonalDiscounts(db *gorm.DB, prefix string) ([]models.Discount, error) {
	var discounts []models.Discount
	err := db.Where("used = ? AND code LIKE ?", true, prefix+"%").
		Order("created_at DESC").
		Find(&discounts).Error
	return discounts, err
}

// EventsWithQualifyingParties returns active events after the cutoff with at
// least minAttendees active, invited attendees. Each qualifying event
// appears exactly once.
func EventsWithQualifyingParties(db *gorm.DB, minAttendees int, after time.Time) ([]models.Event, error) {
	var events []models.Event
	err := db.Model(&models.Event{}).
		Select("events.*").
		Joins("JOIN attendees ON attendees.event_id = events.id AND attendees.is_active = TRUE AND attendees.invite = TRUE").
		Where("events.is_active = ? AND events.event_at > ?", true, after).
		Group("events.id").
		Having("COUNT(attendees.id) >= ?", minAttendees).
		Preload("User").
		Find(&events).Error
	return events, err
}

// DistinctCustomerIDs maps qualifying events to their owners' platform
// customer ids, deduplicated in first-seen order. Owners without a platform
// customer record are skipped.
func DistinctCustomerIDs(events []models.Event) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, event := range events {
		if event.User == nil || event.User.ShopifyCustomerID == nil {
			continue
		}
		id := *event.User.ShopifyCustomerID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// UnfixedInactiveLooks returns deactivated looks whose platform cleanup has
// not run yet. Looks with fixed = true are skipped permanently.
func UnfixedInactiveLooks(db *gorm.DB) ([]models.Look, error) {
	var looks []models.Look
	err := db.Where("is_active = ? AND fixed = ?", false, false).
		Order("created_at ASC").
		Find(&looks).Error
	return looks, err
}

// UsersWithDuplicateEmails returns every user whose email is held by more
// than one account, oldest first. Emails are stored normalized, so plain
// equality is already case-insensitive.
func UsersWithDuplicateEmails(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	subquery := db.Model(&models.User{}).
		Select("email").
		Group("email").
		Having("COUNT(*) > 1")
	err := db.Where("email IN (?)", subquery).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

// GroupByEmail buckets users by email preserving the input (oldest-first)
// order within each bucket.
func GroupByEmail(users []models.User) map[string][]models.User {
	groups := make(map[string][]models.User)
	for _, user := range users {
		groups[user.Email] = append(groups[user.Email], user)
	}
	return groups
}
