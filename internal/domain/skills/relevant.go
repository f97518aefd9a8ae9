package skills

import (
	"github.com/okian/apex/internal/domain/model"
)

// Relevant resolves the skill set visible for one event and athlete level:
// predefined skills whose event matches and whose level gate contains the
// athlete's level, unioned with all of the athlete's custom skills for that
// event. Custom skills are never level-filtered.
func Relevant(all []model.Skill, event model.Event, level int, custom []model.CustomSkill) []Variant {
	out := make([]Variant, 0, len(all))
	for _, s := range all {
		if s.Event != event {
			continue
		}
		if !s.ShownAtLevel(level) {
			continue
		}
		out = append(out, Predefined(s))
	}
	for _, c := range custom {
		if c.Event != event {
			continue
		}
		out = append(out, Custom(c))
	}
	return out
}

// RelevantFromLibrary is Relevant against the predefined catalog.
func RelevantFromLibrary(event model.Event, level int, custom []model.CustomSkill) []Variant {
	return Relevant(library, event, level, custom)
}
