package reconcile

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/platform"
)

// DeactivateUsedCoupons disables the platform discount behind every
// redeemed personal code with the given prefix. Discounts without a
// platform id are logged and skipped; platform 404s count as success so
// re-runs stay idempotent.
func DeactivateUsedCoupons(ctx context.Context, db *gorm.DB, client *platform.Client, logger zerolog.Logger, prefix string) (deactivated, failed int, err error) {
	discounts, err := UsedPersonalDiscounts(db, prefix)
	if err != nil {
		return 0, 0, err
	}

	logger.Info().Int("candidates", len(discounts)).Str("prefix", prefix).Msg("deactivating used coupons")

	for _, discount := range discounts {
		if discount.ShopifyDiscountID == nil || *discount.ShopifyDiscountID == "" {
			logger.Warn().Str("discount_id", discount.ID.String()).Msg("skipping discount without platform id")
			continue
		}

		if err := client.DeactivateDiscount(ctx, *discount.ShopifyDiscountID); err != nil {
			logger.Error().Err(err).
				Str("discount_id", discount.ID.String()).
				Str("code", discount.Code).
				Msg("failed to deactivate platform discount")
			failed++
			continue
		}

		logger.Info().
			Str("discount_id", discount.ID.String()).
			Str("code", discount.Code).
			Msg("platform discount deactivated")
		deactivated++
	}

	return deactivated, failed, nil
}
