package turnlog_test

import (
	"context"
	"testing"
	"time"

	kvstore "github.com/okian/apex/internal/adapters/kvstore"
	model "github.com/okian/apex/internal/domain/model"
	turnlog "github.com/okian/apex/internal/domain/turnlog"
	"github.com/okian/apex/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init("error")
}

// fixedClock pins "today" to 2026-08-31 12:00 UTC.
func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func newService(store kvstore.Store) *turnlog.Service {
	return turnlog.New(store, turnlog.WithClock(fixedClock))
}

func TestUpsertTurn(t *testing.T) {
	Convey("Given an empty turn log", t, func() {
		ctx := context.Background()
		svc := newService(kvstore.NewMemoryStore())
		const athlete = "athlete-1"

		Convey("When upserting a positive count", func() {
			err := svc.UpsertTurn(ctx, athlete, "f4", model.EventFloor, 3)

			Convey("Then today's counts should reflect it", func() {
				So(err, ShouldBeNil)
				today, err := svc.TurnsForToday(ctx, athlete)
				So(err, ShouldBeNil)
				So(today, ShouldResemble, map[string]int{"f4": 3})
			})

			Convey("And a later upsert for the same skill should win", func() {
				So(svc.UpsertTurn(ctx, athlete, "f4", model.EventFloor, 7), ShouldBeNil)
				today, _ := svc.TurnsForToday(ctx, athlete)
				So(today["f4"], ShouldEqual, 7)
			})

			Convey("And reducing the count to zero should remove the entry", func() {
				So(svc.UpsertTurn(ctx, athlete, "f4", model.EventFloor, 0), ShouldBeNil)
				today, _ := svc.TurnsForToday(ctx, athlete)
				So(today, ShouldBeEmpty)

				entries, err := svc.Entries(ctx, athlete)
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When upserting zero for a skill with no entry", func() {
			err := svc.UpsertTurn(ctx, athlete, "b4", model.EventBars, 0)

			Convey("Then it should be a no-op", func() {
				So(err, ShouldBeNil)
				entries, _ := svc.Entries(ctx, athlete)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When upserting with invalid arguments", func() {
			Convey("Then a negative count should be rejected", func() {
				So(svc.UpsertTurn(ctx, athlete, "f4", model.EventFloor, -1), ShouldEqual, turnlog.ErrNegativeCount)
			})

			Convey("Then an unknown event should be rejected", func() {
				So(svc.UpsertTurn(ctx, athlete, "f4", model.Event("Trampoline"), 1), ShouldEqual, turnlog.ErrInvalidEvent)
			})

			Convey("Then an empty skill id should be rejected", func() {
				So(svc.UpsertTurn(ctx, athlete, "  ", model.EventFloor, 1), ShouldEqual, turnlog.ErrEmptySkill)
			})
		})
	})
}

func TestTurnsForToday(t *testing.T) {
	Convey("Given a log with entries on several days", t, func() {
		ctx := context.Background()
		store := kvstore.NewMemoryStore()

		// Seed yesterday's entries through a clock set one day back.
		yesterday := turnlog.New(store, turnlog.WithClock(func() time.Time {
			return fixedClock().AddDate(0, 0, -1)
		}))
		So(yesterday.UpsertTurn(ctx, "athlete-1", "f4", model.EventFloor, 5), ShouldBeNil)

		svc := newService(store)
		So(svc.UpsertTurn(ctx, "athlete-1", "be2", model.EventBeam, 2), ShouldBeNil)

		Convey("When reading today's counts", func() {
			today, err := svc.TurnsForToday(ctx, "athlete-1")

			Convey("Then only today's entries should appear", func() {
				So(err, ShouldBeNil)
				So(today, ShouldResemble, map[string]int{"be2": 2})
			})
		})

		Convey("When reading for an athlete with no log", func() {
			today, err := svc.TurnsForToday(ctx, "athlete-2")

			Convey("Then the result should be an empty map", func() {
				So(err, ShouldBeNil)
				So(today, ShouldBeEmpty)
			})
		})
	})
}

func TestAggregateForWindow(t *testing.T) {
	Convey("Given entries today and ten days ago", t, func() {
		ctx := context.Background()
		store := kvstore.NewMemoryStore()

		tenDaysAgo := turnlog.New(store, turnlog.WithClock(func() time.Time {
			return fixedClock().AddDate(0, 0, -10)
		}))
		So(tenDaysAgo.UpsertTurn(ctx, "athlete-1", "f4", model.EventFloor, 5), ShouldBeNil)

		svc := newService(store)
		So(svc.UpsertTurn(ctx, "athlete-1", "f6", model.EventFloor, 3), ShouldBeNil)

		Convey("When aggregating the 7-day window", func() {
			sums, err := svc.AggregateForWindow(ctx, "athlete-1", 7)

			Convey("Then only today's entry should be counted", func() {
				So(err, ShouldBeNil)
				So(sums, ShouldResemble, map[model.Event]int{model.EventFloor: 3})
			})
		})

		Convey("When aggregating the 30-day window", func() {
			sums, err := svc.AggregateForWindow(ctx, "athlete-1", 30)

			Convey("Then both entries should be summed", func() {
				So(err, ShouldBeNil)
				So(sums, ShouldResemble, map[model.Event]int{model.EventFloor: 8})
			})
		})

		Convey("When an entry sits exactly on the window boundary", func() {
			boundary := turnlog.New(store, turnlog.WithClock(func() time.Time {
				return fixedClock().AddDate(0, 0, -6)
			}))
			So(boundary.UpsertTurn(ctx, "athlete-1", "v3", model.EventVault, 4), ShouldBeNil)

			sums, err := svc.AggregateForWindow(ctx, "athlete-1", 7)

			Convey("Then the boundary day should be included", func() {
				So(err, ShouldBeNil)
				So(sums[model.EventVault], ShouldEqual, 4)
			})
		})

		Convey("When the log contains an unparsable date", func() {
			raw := []byte(`[{"date":"not-a-date","skillId":"f4","event":"Floor","count":9},` +
				`{"date":"2026-08-31","skillId":"f6","event":"Floor","count":3}]`)
			So(store.Set(ctx, "turn_log:athlete-3", raw), ShouldBeNil)

			sums, err := svc.AggregateForWindow(ctx, "athlete-3", 7)

			Convey("Then the bad entry should be silently excluded", func() {
				So(err, ShouldBeNil)
				So(sums, ShouldResemble, map[model.Event]int{model.EventFloor: 3})
			})
		})

		Convey("When asking for a zero-day window", func() {
			_, err := svc.AggregateForWindow(ctx, "athlete-1", 0)

			Convey("Then it should be rejected", func() {
				So(err, ShouldEqual, turnlog.ErrInvalidWindow)
			})
		})
	})
}

func TestPerAthleteIsolation(t *testing.T) {
	Convey("Given two athletes logging turns", t, func() {
		ctx := context.Background()
		svc := newService(kvstore.NewMemoryStore())

		So(svc.UpsertTurn(ctx, "athlete-1", "f4", model.EventFloor, 5), ShouldBeNil)
		So(svc.UpsertTurn(ctx, "athlete-2", "b4", model.EventBars, 2), ShouldBeNil)

		Convey("When reading each athlete's log", func() {
			one, _ := svc.TurnsForToday(ctx, "athlete-1")
			two, _ := svc.TurnsForToday(ctx, "athlete-2")

			Convey("Then entries should not leak across partitions", func() {
				So(one, ShouldResemble, map[string]int{"f4": 5})
				So(two, ShouldResemble, map[string]int{"b4": 2})
			})
		})
	})
}
