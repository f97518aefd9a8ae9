package model_test

import (
	"testing"

	model "github.com/okian/apex/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestEvent(t *testing.T) {
	convey.Convey("Given the Event enum", t, func() {
		convey.Convey("When checking the four apparatus values", func() {
			convey.Convey("Then all of them should be valid", func() {
				convey.So(model.EventVault.Valid(), convey.ShouldBeTrue)
				convey.So(model.EventBars.Valid(), convey.ShouldBeTrue)
				convey.So(model.EventBeam.Valid(), convey.ShouldBeTrue)
				convey.So(model.EventFloor.Valid(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When checking values outside the enum", func() {
			convey.Convey("Then they should be invalid", func() {
				convey.So(model.Event("").Valid(), convey.ShouldBeFalse)
				convey.So(model.Event("Trampoline").Valid(), convey.ShouldBeFalse)
				convey.So(model.Event("vault").Valid(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When listing all events", func() {
			events := model.Events()

			convey.Convey("Then they should be in display order", func() {
				convey.So(events, convey.ShouldResemble, []model.Event{
					model.EventVault, model.EventBars, model.EventBeam, model.EventFloor,
				})
			})
		})
	})
}

func TestSkillShownAtLevel(t *testing.T) {
	convey.Convey("Given a level-gated skill", t, func() {
		skill := model.Skill{
			ID:     "f6",
			Name:   "Round-off Back Handspring",
			Event:  model.EventFloor,
			Levels: []int{5, 6},
		}

		convey.Convey("When checking a level in the gate", func() {
			convey.So(skill.ShownAtLevel(5), convey.ShouldBeTrue)
			convey.So(skill.ShownAtLevel(6), convey.ShouldBeTrue)
		})

		convey.Convey("When checking a level outside the gate", func() {
			convey.So(skill.ShownAtLevel(4), convey.ShouldBeFalse)
			convey.So(skill.ShownAtLevel(10), convey.ShouldBeFalse)
		})
	})
}

func TestAthlete(t *testing.T) {
	convey.Convey("Given an athlete profile", t, func() {
		convey.Convey("When created with a custom skill", func() {
			athlete := model.Athlete{
				ID:    "athlete-1",
				Name:  "Alex",
				Level: 4,
				CustomSkills: []model.CustomSkill{
					{ID: "cs-1", Name: "Press Handstand", Event: model.EventBeam, IsCustom: true},
				},
			}

			convey.Convey("Then it should hold the expected values", func() {
				convey.So(athlete.Name, convey.ShouldEqual, "Alex")
				convey.So(athlete.Level, convey.ShouldEqual, 4)
				convey.So(athlete.CustomSkills, convey.ShouldHaveLength, 1)
				convey.So(athlete.CustomSkills[0].IsCustom, convey.ShouldBeTrue)
			})
		})
	})
}
