// Archives the platform product bundle for every deactivated look that has
// not been cleaned up yet. The fixed flag makes re-runs skip finished rows.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/veilandvest/backoffice/config"
	"github.com/veilandvest/backoffice/internal/platform"
	"github.com/veilandvest/backoffice/internal/reconcile"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("job", "archivelooks").Logger()

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

	archived, failed, err := reconcile.ArchiveDeactivatedLooks(context.Background(), db, client, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("archival batch failed")
	}

	logger.Info().Int("archived", archived).Int("failed", failed).Msg("archival batch finished")
}
