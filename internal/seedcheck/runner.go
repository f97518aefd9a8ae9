package seedcheck

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/okian/apex/pkg/logger"
)

// Run executes the complete seed-and-check flow.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting apex seed-check",
		logger.String("baseURL", config.BaseURL),
		logger.Int("athletes", config.NumAthletes),
		logger.Int("skillsPerAthlete", config.SkillsPerAthlete),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config, client); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Create demo athletes
	athletes, err := generateAthletes(ctx, config, client, stats)
	if err != nil {
		return fmt.Errorf("athlete creation failed: %w", err)
	}

	// Step 3: Resolve each athlete's relevant skills
	skillsByAthlete, err := resolveSkills(ctx, config, client, athletes, stats)
	if err != nil {
		return fmt.Errorf("skill resolution failed: %w", err)
	}

	// Step 4: Submit today's turn counts
	expected, err := submitTurns(ctx, config, client, athletes, skillsByAthlete, stats)
	if err != nil {
		return fmt.Errorf("turn submission failed: %w", err)
	}

	// Step 5: Verify today's counts and window summaries
	if err := verifyResults(ctx, config, client, athletes, expected, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, stats.ChecksPassed+stats.ChecksFailed)
	}
	return nil
}

// checkServiceHealth verifies the service answers on /healthz.
func checkServiceHealth(_ context.Context, config *Config, client *HTTPClient) error {
	log.Printf("🏥 Checking service health at %s...", config.BaseURL)

	resp, err := client.Get(config.BaseURL + "/healthz")
	if err != nil {
		return fmt.Errorf("health endpoint unreachable: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return err
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}

	log.Printf("✅ Service is healthy")
	return nil
}

// submitTurns posts today's counts and returns the expected per-athlete state.
func submitTurns(ctx context.Context, config *Config, client *HTTPClient, athletes []Athlete, skillsByAthlete map[string][]RelevantSkill, stats *Stats) (map[string][]TurnUpsert, error) {
	log.Printf("📤 Submitting turn counts for %d athletes...", len(athletes))

	url := config.BaseURL + "/turns"
	expected := make(map[string][]TurnUpsert, len(athletes))

	for _, athlete := range athletes {
		turns := pickTurns(athlete, skillsByAthlete[athlete.ID], config.SkillsPerAthlete)
		for _, turn := range turns {
			resp, err := client.Post(url, turn)
			if err != nil {
				stats.TurnsFailed++
				logger.Get().Warn(ctx, "turn submission failed",
					logger.String("athlete", turn.AthleteID),
					logger.String("skill", turn.SkillID),
					logger.Error(err))
				continue
			}
			if _, err := readResponseBody(resp); err != nil {
				stats.TurnsFailed++
				continue
			}
			if resp.StatusCode != StatusNoContent {
				stats.TurnsFailed++
				continue
			}
			stats.TurnsSubmitted++
		}
		expected[athlete.ID] = turns
	}

	log.Printf("✅ Submitted %d turns (%d failed)", stats.TurnsSubmitted, stats.TurnsFailed)
	return expected, nil
}

// displayFinalStats prints the run summary.
func displayFinalStats(stats *Stats) {
	total := stats.ChecksPassed + stats.ChecksFailed
	passRate := 0.0
	if total > 0 {
		passRate = float64(stats.ChecksPassed) / float64(total) * PercentageMultiplier
	}

	log.Printf("📊 Seed-check complete in %s", stats.Duration.Round(time.Millisecond))
	log.Printf("   Athletes created:  %d", stats.AthletesCreated)
	log.Printf("   Skills resolved:   %d", stats.SkillsResolved)
	log.Printf("   Turns submitted:   %d", stats.TurnsSubmitted)
	log.Printf("   Turns failed:      %d", stats.TurnsFailed)
	log.Printf("   Checks passed:     %d/%d (%.1f%%)", stats.ChecksPassed, total, passRate)
}
