// Merges duplicate user accounts that share an email. Expects exactly two
// accounts per duplicated email and aborts the batch otherwise.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/veilandvest/backoffice/config"
	"github.com/veilandvest/backoffice/internal/reconcile"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("job", "dedupeusers").Logger()

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

	merged, err := reconcile.DedupeUsers(db, logger)
	if err != nil {
		logger.Fatal().Err(err).Int("merged_before_abort", merged).Msg("dedupe batch aborted")
	}

	logger.Info().Int("merged", merged).Msg("dedupe batch finished")
}
