package replay

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/apex/internal/domain/model"
)

func TestKey(t *testing.T) {
	Convey("Given media bytes and a prompt", t, func() {
		media := []byte("frame-data")

		Convey("When the same media and prompt are hashed twice", func() {
			Convey("Then the keys match", func() {
				So(Key(media, "judge"), ShouldEqual, Key(media, "judge"))
			})
		})

		Convey("When the prompt differs", func() {
			Convey("Then the keys differ", func() {
				So(Key(media, "judge"), ShouldNotEqual, Key(media, "coach"))
			})
		})

		Convey("When the media differs", func() {
			Convey("Then the keys differ", func() {
				So(Key(media, "judge"), ShouldNotEqual, Key([]byte("other"), "judge"))
			})
		})
	})
}

func TestInMemoryCache(t *testing.T) {
	Convey("Given an in-memory replay cache", t, func() {
		ctx := context.Background()
		cache := NewInMemoryCache(WithMaxSize(3))

		result := model.AnalysisResult{
			FormCorrections: []model.FormCorrection{
				{Timestamp: 1.5, Feedback: "Clean line through the handstand."},
			},
			FinalScoreRange: model.FinalScoreRange{Min: 9.0, Max: 9.4},
		}

		Convey("When a result is stored", func() {
			cache.Put(ctx, "k1", result)

			Convey("Then it can be retrieved", func() {
				got, ok := cache.Get(ctx, "k1")
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, result)
			})

			Convey("Then a different key misses", func() {
				_, ok := cache.Get(ctx, "k2")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the same key is stored twice", func() {
			cache.Put(ctx, "k1", result)
			updated := result
			updated.FinalScoreRange = model.FinalScoreRange{Min: 8.5, Max: 9.0}
			cache.Put(ctx, "k1", updated)

			Convey("Then the latest result wins and size stays one", func() {
				got, ok := cache.Get(ctx, "k1")
				So(ok, ShouldBeTrue)
				So(got.FinalScoreRange, ShouldResemble, model.FinalScoreRange{Min: 8.5, Max: 9.0})
				So(cache.Size(), ShouldEqual, 1)
			})
		})

		Convey("When more results than the bound are stored", func() {
			for i := 0; i < 4; i++ {
				cache.Put(ctx, fmt.Sprintf("k%d", i), result)
			}

			Convey("Then the oldest entry is evicted", func() {
				_, ok := cache.Get(ctx, "k0")
				So(ok, ShouldBeFalse)
				So(cache.Size(), ShouldEqual, 3)
			})

			Convey("Then newer entries survive", func() {
				for i := 1; i < 4; i++ {
					_, ok := cache.Get(ctx, fmt.Sprintf("k%d", i))
					So(ok, ShouldBeTrue)
				}
			})
		})
	})
}
