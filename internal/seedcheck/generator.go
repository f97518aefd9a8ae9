package seedcheck

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/okian/apex/pkg/logger"
)

// Level and count generation bounds.
const (
	minLevel      = 1
	levelRange    = 10
	minTurnCount  = 1
	turnCountSpan = 12
)

var demoNames = []string{
	"Maya", "Sofia", "Elena", "Aria", "Nadia", "Lucia",
	"Simone", "Jade", "Gabby", "Aly", "Laurie", "Sunisa",
}

var events = []string{"Vault", "Bars", "Beam", "Floor"}

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateAthletes creates demo athletes through the API.
func generateAthletes(ctx context.Context, config *Config, client *HTTPClient, stats *Stats) ([]Athlete, error) {
	athletes := make([]Athlete, 0, config.NumAthletes)
	url := config.BaseURL + "/athletes"

	for i := 0; i < config.NumAthletes; i++ {
		name := fmt.Sprintf("%s %d", demoNames[i%len(demoNames)], i/len(demoNames)+1)
		level := minLevel + randomInt(levelRange)

		resp, err := client.Post(url, map[string]interface{}{
			"name":  name,
			"level": level,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create athlete %q: %w", name, err)
		}
		body, err := readResponseBody(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to read athlete response: %w", err)
		}
		if resp.StatusCode != StatusCreated {
			return nil, fmt.Errorf("unexpected status %d creating athlete: %s", resp.StatusCode, string(body))
		}

		var athlete Athlete
		if err := unmarshal(body, &athlete); err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
		stats.AthletesCreated++

		if config.Verbose {
			logger.Get().Info(ctx, "created athlete",
				logger.String("id", athlete.ID),
				logger.String("name", athlete.Name),
				logger.Int("level", athlete.Level))
		}
	}

	return athletes, nil
}

// resolveSkills fetches each athlete's relevant pick list per event.
func resolveSkills(ctx context.Context, config *Config, client *HTTPClient, athletes []Athlete, stats *Stats) (map[string][]RelevantSkill, error) {
	skillsByAthlete := make(map[string][]RelevantSkill, len(athletes))

	for _, athlete := range athletes {
		var all []RelevantSkill
		for _, event := range events {
			url := fmt.Sprintf("%s/skills?event=%s&athleteId=%s", config.BaseURL, event, athlete.ID)
			var relevant []RelevantSkill
			if err := client.getJSON(url, &relevant); err != nil {
				return nil, fmt.Errorf("failed to resolve %s skills for %s: %w", event, athlete.ID, err)
			}
			all = append(all, relevant...)
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("athlete %s has no relevant skills at level %d", athlete.ID, athlete.Level)
		}
		skillsByAthlete[athlete.ID] = all
		stats.SkillsResolved += len(all)

		if config.Verbose {
			logger.Get().Info(ctx, "resolved skills",
				logger.String("athlete", athlete.ID),
				logger.Int("count", len(all)))
		}
	}

	return skillsByAthlete, nil
}

// pickTurns selects random skills and counts for one athlete.
func pickTurns(athlete Athlete, relevant []RelevantSkill, skillsPerAthlete int) []TurnUpsert {
	turns := make([]TurnUpsert, 0, skillsPerAthlete)
	seen := make(map[string]bool, skillsPerAthlete)

	for len(turns) < skillsPerAthlete && len(seen) < len(relevant) {
		skill := relevant[randomInt(len(relevant))]
		if seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		turns = append(turns, TurnUpsert{
			AthleteID: athlete.ID,
			SkillID:   skill.ID,
			Event:     skill.Event,
			Count:     minTurnCount + randomInt(turnCountSpan),
		})
	}
	return turns
}
