package reconcile

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/platform"
)

// TagGroupCustomers tags the platform customer of every event owner whose
// party qualifies (minAttendees active invited attendees, event after the
// cutoff). Platform failures are logged and skipped; nothing is written
// back to the database, so re-runs may tag a customer twice. Tagging is
// additive on the platform side, which makes that harmless.
func TagGroupCustomers(ctx context.Context, db *gorm.DB, client *platform.Client, logger zerolog.Logger, minAttendees int, after time.Time, tag string) (tagged, failed int, err error) {
	events, err := EventsWithQualifyingParties(db, minAttendees, after)
	if err != nil {
		return 0, 0, err
	}

	customerIDs := DistinctCustomerIDs(events)
	logger.Info().
		Int("qualifying_events", len(events)).
		Int("customers", len(customerIDs)).
		Msg("tagging group-event customers")

	for _, customerID := range customerIDs {
		if err := client.AddCustomerTags(ctx, customerID, []string{tag}); err != nil {
			logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to tag customer")
			failed++
			continue
		}
		logger.Info().Str("customer_id", customerID).Str("tag", tag).Msg("customer tagged")
		tagged++
	}

	return tagged, failed, nil
}
