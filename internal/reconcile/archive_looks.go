package reconcile

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/platform"
)

// ArchiveDeactivatedLooks archives the platform product bundle behind every
// deactivated look that has not been cleaned up yet, then sets fixed = true
// so later runs skip the look. The flag is only written after the platform
// call succeeds: a crash in between repeats the archival, which the
// platform treats as a no-op.
func ArchiveDeactivatedLooks(ctx context.Context, db *gorm.DB, client *platform.Client, logger zerolog.Logger) (archived, failed int, err error) {
	looks, err := UnfixedInactiveLooks(db)
	if err != nil {
		return 0, 0, err
	}

	logger.Info().Int("candidates", len(looks)).Msg("archiving deactivated looks")

	for _, look := range looks {
		envelope, err := look.ParseSpecs()
		if err != nil {
			logger.Error().Err(err).Str("look_id", look.ID.String()).Msg("skipping look with unusable specs")
			failed++
			continue
		}

		if err := client.ArchiveProduct(ctx, envelope.Bundle.ProductID); err != nil {
			logger.Error().Err(err).
				Str("look_id", look.ID.String()).
				Int64("product_id", envelope.Bundle.ProductID).
				Msg("failed to archive platform product")
			failed++
			continue
		}

		if err := db.Model(&look).Update("fixed", true).Error; err != nil {
			logger.Error().Err(err).Str("look_id", look.ID.String()).Msg("failed to mark look fixed")
			failed++
			continue
		}

		logger.Info().
			Str("look_id", look.ID.String()).
			Int64("product_id", envelope.Bundle.ProductID).
			Msg("look archived")
		archived++
	}

	return archived, failed, nil
}
