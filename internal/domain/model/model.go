// Package model contains domain models passed between layers.
package model

// Event is one of the four gymnastics apparatus categories.
type Event string

const (
	EventVault Event = "Vault"
	EventBars  Event = "Bars"
	EventBeam  Event = "Beam"
	EventFloor Event = "Floor"
)

// Events lists all apparatus categories in display order.
func Events() []Event {
	return []Event{EventVault, EventBars, EventBeam, EventFloor}
}

// Valid reports whether e is one of the four apparatus categories.
func (e Event) Valid() bool {
	switch e {
	case EventVault, EventBars, EventBeam, EventFloor:
		return true
	}
	return false
}

// Skill is a predefined, level-gated movement associated with one event.
// Predefined skills are immutable reference data not owned by any athlete.
type Skill struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Event  Event  `json:"event"`
	Levels []int  `json:"levels"`
}

// ShownAtLevel reports whether the skill is gated open for level.
func (s Skill) ShownAtLevel(level int) bool {
	for _, l := range s.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// CustomSkill is an athlete-owned skill outside the predefined library.
// It is visible at every level for its owning athlete.
type CustomSkill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Event    Event  `json:"event"`
	IsCustom bool   `json:"isCustom"`
}

// Athlete is a tracked gymnast profile.
type Athlete struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Level        int           `json:"level"`
	CustomSkills []CustomSkill `json:"customSkills"`
}

// TurnEntry records the total reps logged for one skill on one calendar day.
// At most one entry exists per (Date, SkillID) pair; a count reduced to zero
// removes the entry instead of persisting a zero.
type TurnEntry struct {
	Date    string `json:"date"` // yyyy-mm-dd, UTC calendar day
	SkillID string `json:"skillId"`
	Event   Event  `json:"event"`
	Count   int    `json:"count"`
}

// FormCorrection is a single piece of timestamped form feedback.
type FormCorrection struct {
	Timestamp float64 `json:"timestamp"`
	Feedback  string  `json:"feedback"`
}

// Deduction is a potential judging deduction with a value range.
type Deduction struct {
	Timestamp         float64 `json:"timestamp"`
	Description       string  `json:"description"`
	DeductionRangeMin float64 `json:"deductionRangeMin"`
	DeductionRangeMax float64 `json:"deductionRangeMax"`
}

// FinalScoreRange is the estimated score band for a routine.
type FinalScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AnalysisResult is the structured output of a video analysis. It is treated
// as an opaque value object attached to a SavedVideo.
type AnalysisResult struct {
	FormCorrections []FormCorrection `json:"formCorrections"`
	Deductions      []Deduction      `json:"deductions"`
	FinalScoreRange FinalScoreRange  `json:"finalScoreRange"`
}

// SavedVideo is an analyzed routine kept for review. Media bytes live in
// process memory only; deleting the video releases them.
type SavedVideo struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Media    []byte         `json:"-"`
	MimeType string         `json:"mimeType"`
	Prompt   string         `json:"prompt"`
	Analysis AnalysisResult `json:"analysis"`
	Date     string         `json:"date"` // RFC3339
}
