// Tags the platform customers of event owners whose party has enough
// active invited attendees. Run on demand; safe to re-run (tags are
// additive on the platform side).
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/veilandvest/backoffice/config"
	"github.com/veilandvest/backoffice/internal/platform"
	"github.com/veilandvest/backoffice/internal/reconcile"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("job", "tagcustomers").Logger()

	minAttendees := flag.Int("min-attendees", 4, "minimum active invited attendees for an event to qualify")
	afterStr := flag.String("after", "", "only consider events after this date (RFC3339), defaults to 90 days ago")
	tag := flag.String("tag", "group-event", "tag to add to qualifying customers")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Msg("no .env file found, using process environment")
	}

	after := time.Now().AddDate(0, 0, -90)
	if *afterStr != "" {
		parsed, err := time.Parse(time.RFC3339, *afterStr)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -after value")
		}
		after = parsed
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

	tagged, failed, err := reconcile.TagGroupCustomers(context.Background(), db, client, logger, *minAttendees, after, *tag)
	if err != nil {
		logger.Fatal().Err(err).Msg("tagging batch failed")
	}

	logger.Info().Int("tagged", tagged).Int("failed", failed).Msg("tagging batch finished")
}
