package videostore

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/apex/internal/domain/model"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an in-memory video store", t, func() {
		ctx := context.Background()
		store := NewMemoryStore()

		video := model.SavedVideo{
			Name:     "Beam routine",
			Media:    []byte{0x00, 0x01, 0x02},
			MimeType: "video/mp4",
			Prompt:   "judge",
			Date:     "2026-08-31",
		}

		Convey("When a video is saved", func() {
			saved, err := store.Save(ctx, video)

			Convey("Then it gets an ID and is retrievable with media", func() {
				So(err, ShouldBeNil)
				So(saved.ID, ShouldStartWith, "video-")

				got, err := store.Get(ctx, saved.ID)
				So(err, ShouldBeNil)
				So(got.Media, ShouldResemble, video.Media)
			})

			Convey("Then listing omits media bytes", func() {
				videos, err := store.List(ctx)
				So(err, ShouldBeNil)
				So(videos, ShouldHaveLength, 1)
				So(videos[0].Media, ShouldBeNil)
				So(videos[0].Name, ShouldEqual, "Beam routine")
			})
		})

		Convey("When multiple videos are saved", func() {
			first, err := store.Save(ctx, video)
			So(err, ShouldBeNil)

			second := video
			second.Name = "Floor routine"
			saved, err := store.Save(ctx, second)
			So(err, ShouldBeNil)

			Convey("Then listing is newest first", func() {
				videos, err := store.List(ctx)
				So(err, ShouldBeNil)
				So(videos, ShouldHaveLength, 2)
				So(videos[0].ID, ShouldEqual, saved.ID)
				So(videos[1].ID, ShouldEqual, first.ID)
			})
		})

		Convey("When a video is deleted", func() {
			saved, err := store.Save(ctx, video)
			So(err, ShouldBeNil)

			So(store.Delete(ctx, saved.ID), ShouldBeNil)

			Convey("Then it is gone", func() {
				_, err := store.Get(ctx, saved.ID)
				So(err, ShouldEqual, ErrVideoNotFound)
			})

			Convey("Then deleting again reports not found", func() {
				So(store.Delete(ctx, saved.ID), ShouldEqual, ErrVideoNotFound)
			})
		})

		Convey("When the store is cleared", func() {
			_, err := store.Save(ctx, video)
			So(err, ShouldBeNil)

			So(store.Clear(ctx), ShouldBeNil)

			videos, err := store.List(ctx)
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("When a save is invalid", func() {
			Convey("Then an empty name is rejected", func() {
				bad := video
				bad.Name = ""
				_, err := store.Save(ctx, bad)
				So(err, ShouldEqual, ErrEmptyName)
			})

			Convey("Then empty media is rejected", func() {
				bad := video
				bad.Media = nil
				_, err := store.Save(ctx, bad)
				So(err, ShouldEqual, ErrEmptyMedia)
			})
		})
	})
}
