package seedcheck

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPickTurns(t *testing.T) {
	Convey("Given an athlete with a pick list", t, func() {
		athlete := Athlete{ID: "athlete-1", Name: "Maya", Level: 4}
		relevant := []RelevantSkill{
			{ID: "f1", Name: "Handstand", Event: "Floor"},
			{ID: "f2", Name: "Cartwheel", Event: "Floor"},
			{ID: "b1", Name: "Pullover", Event: "Bars"},
		}

		Convey("When turns are picked", func() {
			turns := pickTurns(athlete, relevant, 2)

			Convey("Then each turn targets a distinct skill with a positive count", func() {
				So(turns, ShouldHaveLength, 2)
				seen := map[string]bool{}
				for _, turn := range turns {
					So(turn.AthleteID, ShouldEqual, "athlete-1")
					So(turn.Count, ShouldBeGreaterThan, 0)
					So(seen[turn.SkillID], ShouldBeFalse)
					seen[turn.SkillID] = true
				}
			})
		})

		Convey("When more turns are requested than skills exist", func() {
			turns := pickTurns(athlete, relevant, 10)

			Convey("Then the pick list caps the selection", func() {
				So(turns, ShouldHaveLength, 3)
			})
		})
	})
}

func TestMapsEqual(t *testing.T) {
	Convey("Given count maps", t, func() {
		Convey("Then identical maps compare equal", func() {
			So(mapsEqual(map[string]int{"Floor": 5}, map[string]int{"Floor": 5}), ShouldBeTrue)
		})

		Convey("Then differing counts compare unequal", func() {
			So(mapsEqual(map[string]int{"Floor": 5}, map[string]int{"Floor": 3}), ShouldBeFalse)
		})

		Convey("Then zero entries are ignored", func() {
			So(mapsEqual(map[string]int{"Floor": 5, "Beam": 0}, map[string]int{"Floor": 5}), ShouldBeTrue)
		})

		Convey("Then a missing non-zero entry compares unequal", func() {
			So(mapsEqual(map[string]int{"Floor": 5}, map[string]int{"Floor": 5, "Beam": 2}), ShouldBeFalse)
		})
	})
}
