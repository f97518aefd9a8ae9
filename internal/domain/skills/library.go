// Package skills holds the predefined skill library and the rules for
// resolving which skills are visible for an event and athlete level.
package skills

import (
	"github.com/okian/apex/internal/domain/model"
)

// library is the predefined catalog, immutable reference data. Entries are
// grouped by apparatus and ordered roughly by level progression.
var library = []model.Skill{
	// Vault
	{ID: "v1", Name: "Straight Jump", Event: model.EventVault, Levels: []int{1, 2}},
	{ID: "v2", Name: "Handstand Flatback", Event: model.EventVault, Levels: []int{3, 4}},
	{ID: "v3", Name: "Front Handspring", Event: model.EventVault, Levels: []int{4, 5, 6}},
	{ID: "v4", Name: "Tsukahara Prep", Event: model.EventVault, Levels: []int{6, 7}},
	{ID: "v5", Name: "Yurchenko Prep", Event: model.EventVault, Levels: []int{7, 8}},
	{ID: "v6", Name: "Tsukahara Tuck", Event: model.EventVault, Levels: []int{8, 9}},
	{ID: "v7", Name: "Yurchenko Layout", Event: model.EventVault, Levels: []int{9, 10}},

	// Bars
	{ID: "b1", Name: "Pullover", Event: model.EventBars, Levels: []int{1, 2, 3}},
	{ID: "b2", Name: "Back Hip Circle", Event: model.EventBars, Levels: []int{2, 3}},
	{ID: "b3", Name: "Front Hip Circle", Event: model.EventBars, Levels: []int{3, 4}},
	{ID: "b4", Name: "Kip", Event: model.EventBars, Levels: []int{4, 5, 6}},
	{ID: "b5", Name: "Flyaway Dismount", Event: model.EventBars, Levels: []int{5, 6, 7}},
	{ID: "b6", Name: "Clear Hip Circle", Event: model.EventBars, Levels: []int{6, 7, 8}},
	{ID: "b7", Name: "Giant Swing", Event: model.EventBars, Levels: []int{7, 8, 9}},
	{ID: "b8", Name: "Tkatchev", Event: model.EventBars, Levels: []int{9, 10}},
	{ID: "b9", Name: "Double Layout Dismount", Event: model.EventBars, Levels: []int{10}},

	// Beam
	{ID: "be1", Name: "Straight Jump", Event: model.EventBeam, Levels: []int{1, 2}},
	{ID: "be2", Name: "Cartwheel", Event: model.EventBeam, Levels: []int{3, 4}},
	{ID: "be3", Name: "Handstand", Event: model.EventBeam, Levels: []int{3, 4, 5}},
	{ID: "be4", Name: "Leap Series", Event: model.EventBeam, Levels: []int{5, 6}},
	{ID: "be5", Name: "Back Walkover", Event: model.EventBeam, Levels: []int{5, 6, 7}},
	{ID: "be6", Name: "Back Handspring", Event: model.EventBeam, Levels: []int{7, 8}},
	{ID: "be7", Name: "Switch Leap", Event: model.EventBeam, Levels: []int{7, 8, 9}},
	{ID: "be8", Name: "Back Tuck", Event: model.EventBeam, Levels: []int{8, 9, 10}},
	{ID: "be9", Name: "Full Turn", Event: model.EventBeam, Levels: []int{6, 7, 8, 9, 10}},

	// Floor
	{ID: "f1", Name: "Forward Roll", Event: model.EventFloor, Levels: []int{1}},
	{ID: "f2", Name: "Cartwheel", Event: model.EventFloor, Levels: []int{1, 2, 3}},
	{ID: "f3", Name: "Round-off", Event: model.EventFloor, Levels: []int{3, 4}},
	{ID: "f4", Name: "Back Handspring", Event: model.EventFloor, Levels: []int{4, 5, 6}},
	{ID: "f5", Name: "Front Handspring", Event: model.EventFloor, Levels: []int{4, 5}},
	{ID: "f6", Name: "Round-off Back Handspring", Event: model.EventFloor, Levels: []int{5, 6}},
	{ID: "f7", Name: "Front Tuck", Event: model.EventFloor, Levels: []int{6, 7}},
	{ID: "f8", Name: "Back Tuck", Event: model.EventFloor, Levels: []int{6, 7}},
	{ID: "f9", Name: "Layout", Event: model.EventFloor, Levels: []int{7, 8, 9}},
	{ID: "f10", Name: "Full Twist", Event: model.EventFloor, Levels: []int{8, 9, 10}},
	{ID: "f11", Name: "Double Tuck", Event: model.EventFloor, Levels: []int{10}},
}

// Library returns a copy of the predefined skill catalog.
func Library() []model.Skill {
	out := make([]model.Skill, len(library))
	copy(out, library)
	return out
}

// Lookup returns the predefined skill with the given id.
func Lookup(id string) (model.Skill, bool) {
	for _, s := range library {
		if s.ID == id {
			return s, true
		}
	}
	return model.Skill{}, false
}
