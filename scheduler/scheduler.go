package scheduler

import (
	"time"

	"doctrack/connection"
	"doctrack/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartScheduler rolls the weekly activity log forward every Monday morning:
// each active project's latest week structure is cloned into the new week.
func StartScheduler() {
	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	c := cron.New()

	// Mondays at 06:00.
	_, err = c.AddFunc("0 6 * * 1", func() {
		weekStart := time.Now().UTC().Truncate(24 * time.Hour)
		rolled, err := service.RollForwardWeeks(DB, weekStart)
		if err != nil {
			log.Error().Err(err).Msg("Week rollover failed")
			return
		}
		log.Info().Int("projects", rolled).Msg("Week rollover finished")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to add cron job")
	}

	c.Start()
	log.Info().Msg("Scheduler started")

	// Block forever
	select {}
}
