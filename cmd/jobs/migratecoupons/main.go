// Deactivates the platform discount behind every redeemed personal coupon
// code. Already-deactivated platform discounts count as success, so the
// job can be re-run after partial failures.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/veilandvest/backoffice/config"
	"github.com/veilandvest/backoffice/internal/platform"
	"github.com/veilandvest/backoffice/internal/reconcile"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("job", "migratecoupons").Logger()

	prefix := flag.String("prefix", "VV-", "personal discount code prefix to migrate")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Msg("no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	platformCfg, err := config.LoadPlatformConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load platform config")
	}
	client := platform.New(platformCfg.BaseURL, platformCfg.AccessToken)

	deactivated, failed, err := reconcile.DeactivateUsedCoupons(context.Background(), db, client, logger, *prefix)
	if err != nil {
		logger.Fatal().Err(err).Msg("coupon migration batch failed")
	}

	logger.Info().Int("deactivated", deactivated).Int("failed", failed).Msg("coupon migration finished")
}
