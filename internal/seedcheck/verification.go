package seedcheck

import (
	"context"
	"fmt"
	"log"

	"github.com/okian/apex/pkg/logger"
)

// Summary windows to verify.
var summaryWindows = []int{7, 30}

// verifyResults checks today's counts and window summaries against what was
// submitted.
func verifyResults(ctx context.Context, config *Config, client *HTTPClient, athletes []Athlete, expected map[string][]TurnUpsert, stats *Stats) error {
	log.Printf("🔍 Verifying counts for %d athletes...", len(athletes))

	for _, athlete := range athletes {
		if err := verifyToday(ctx, config, client, athlete, expected[athlete.ID], stats); err != nil {
			return err
		}
		for _, days := range summaryWindows {
			if err := verifySummary(ctx, config, client, athlete, expected[athlete.ID], days, stats); err != nil {
				return err
			}
		}
	}

	log.Printf("✅ Verification finished: %d passed, %d failed", stats.ChecksPassed, stats.ChecksFailed)
	return nil
}

// verifyToday compares GET /turns/today against the submitted counts.
func verifyToday(ctx context.Context, config *Config, client *HTTPClient, athlete Athlete, turns []TurnUpsert, stats *Stats) error {
	url := fmt.Sprintf("%s/turns/today?athleteId=%s", config.BaseURL, athlete.ID)
	var got map[string]int
	if err := client.getJSON(url, &got); err != nil {
		return fmt.Errorf("failed to fetch today's counts for %s: %w", athlete.ID, err)
	}

	want := make(map[string]int, len(turns))
	for _, turn := range turns {
		want[turn.SkillID] = turn.Count
	}

	if mapsEqual(got, want) {
		stats.ChecksPassed++
		return nil
	}

	stats.ChecksFailed++
	logger.Get().Warn(ctx, "today counts mismatch",
		logger.String("athlete", athlete.ID),
		logger.Any("want", want),
		logger.Any("got", got))
	return nil
}

// verifySummary compares GET /turns/summary against per-event sums of the
// submitted counts. Only today was seeded, so every window must agree.
func verifySummary(ctx context.Context, config *Config, client *HTTPClient, athlete Athlete, turns []TurnUpsert, days int, stats *Stats) error {
	url := fmt.Sprintf("%s/turns/summary?days=%d&athleteId=%s", config.BaseURL, days, athlete.ID)
	var got map[string]int
	if err := client.getJSON(url, &got); err != nil {
		return fmt.Errorf("failed to fetch %d-day summary for %s: %w", days, athlete.ID, err)
	}

	want := make(map[string]int)
	for _, turn := range turns {
		want[turn.Event] += turn.Count
	}

	if mapsEqual(got, want) {
		stats.ChecksPassed++
		return nil
	}

	stats.ChecksFailed++
	logger.Get().Warn(ctx, "summary mismatch",
		logger.String("athlete", athlete.ID),
		logger.Int("days", days),
		logger.Any("want", want),
		logger.Any("got", got))
	return nil
}

// mapsEqual reports whether two count maps hold the same non-zero entries.
func mapsEqual(a, b map[string]int) bool {
	for k, v := range a {
		if v != 0 && b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if v != 0 && a[k] != v {
			return false
		}
	}
	return true
}
