package reconcile

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

// ErrUnexpectedDuplicateCount aborts the dedupe batch: the merge rule is
// written for exactly two accounts per email, and a bigger group means the
// data needs a human first.
var ErrUnexpectedDuplicateCount = fmt.Errorf("duplicate email group does not contain exactly two users")

// PickKeeper decides which of two duplicate accounts survives a merge: the
// older account keeps its id, the newer one is absorbed.
func PickKeeper(a, b models.User) (keeper, dupe models.User) {
	if b.CreatedAt.Before(a.CreatedAt) {
		return b, a
	}
	return a, b
}

// DedupeUsers merges every duplicate-email pair: events, looks, orders and
// attendee links move to the keeper, then the duplicate row is deleted.
// Unlike the other jobs this one aborts the whole batch when it finds a
// group it cannot merge safely.
func DedupeUsers(db *gorm.DB, logger zerolog.Logger) (merged int, err error) {
	users, err := UsersWithDuplicateEmails(db)
	if err != nil {
		return 0, err
	}

	groups := GroupByEmail(users)

	// Deterministic batch order for logs and re-runs.
	emails := make([]string, 0, len(groups))
	for email := range groups {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	logger.Info().Int("duplicate_emails", len(emails)).Msg("deduplicating users")

	for _, email := range emails {
		group := groups[email]
		if len(group) != 2 {
			logger.Error().Str("email", email).Int("count", len(group)).Msg("aborting: unexpected duplicate group size")
			return merged, fmt.Errorf("email %s has %d accounts: %w", email, len(group), ErrUnexpectedDuplicateCount)
		}

		keeper, dupe := PickKeeper(group[0], group[1])

		err := db.Transaction(func(tx *gorm.DB) error {
			reassignments := []any{&models.Event{}, &models.Look{}, &models.Order{}}
			for _, model := range reassignments {
				if err := tx.Model(model).Where("user_id = ?", dupe.ID).Update("user_id", keeper.ID).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&models.Attendee{}).Where("user_id = ?", dupe.ID).Update("user_id", keeper.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&models.User{}, "id = ?", dupe.ID).Error
		})
		if err != nil {
			logger.Error().Err(err).Str("email", email).Msg("failed to merge duplicate users")
			return merged, err
		}

		logger.Info().
			Str("email", email).
			Str("keeper_id", keeper.ID.String()).
			Str("removed_id", dupe.ID.String()).
			Msg("duplicate users merged")
		merged++
	}

	return merged, nil
}
