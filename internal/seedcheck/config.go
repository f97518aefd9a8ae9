package seedcheck

import "time"

// Config holds configuration for the seed-and-check run
type Config struct {
	BaseURL          string        // Base URL of the service
	NumAthletes      int           // Number of demo athletes to create
	SkillsPerAthlete int           // Number of skills to log per athlete
	Timeout          time.Duration // HTTP request timeout
	LogFile          string        // Log file for run output
	Verbose          bool          // Enable verbose logging
}

// Athlete mirrors the roster wire shape
type Athlete struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Level        int           `json:"level"`
	CustomSkills []CustomSkill `json:"customSkills"`
}

// CustomSkill mirrors the athlete-owned skill wire shape
type CustomSkill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Event    string `json:"event"`
	IsCustom bool   `json:"isCustom"`
}

// RelevantSkill mirrors the pick-list wire shape
type RelevantSkill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Event    string `json:"event"`
	IsCustom bool   `json:"isCustom"`
}

// TurnUpsert is the request body for POST /turns
type TurnUpsert struct {
	AthleteID string `json:"athleteId"`
	SkillID   string `json:"skillId"`
	Event     string `json:"event"`
	Count     int    `json:"count"`
}

// Stats holds run statistics
type Stats struct {
	AthletesCreated int
	SkillsResolved  int
	TurnsSubmitted  int
	TurnsFailed     int
	ChecksPassed    int
	ChecksFailed    int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
