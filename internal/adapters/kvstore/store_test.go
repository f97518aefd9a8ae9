package kvstore_test

import (
	"context"
	"testing"

	kvstore "github.com/okian/apex/internal/adapters/kvstore"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store := kvstore.NewMemoryStore()

		Convey("When getting an absent key", func() {
			_, err := store.Get(ctx, "missing")

			Convey("Then it should return ErrKeyNotFound", func() {
				So(err, ShouldEqual, kvstore.ErrKeyNotFound)
			})
		})

		Convey("When setting and getting a key", func() {
			So(store.Set(ctx, "roster", []byte(`[{"id":"a1"}]`)), ShouldBeNil)
			got, err := store.Get(ctx, "roster")

			Convey("Then the stored value should round-trip", func() {
				So(err, ShouldBeNil)
				So(string(got), ShouldEqual, `[{"id":"a1"}]`)
			})
		})

		Convey("When overwriting a key", func() {
			So(store.Set(ctx, "k", []byte("v1")), ShouldBeNil)
			So(store.Set(ctx, "k", []byte("v2")), ShouldBeNil)
			got, err := store.Get(ctx, "k")

			Convey("Then the last write should win", func() {
				So(err, ShouldBeNil)
				So(string(got), ShouldEqual, "v2")
			})
		})

		Convey("When deleting a key", func() {
			So(store.Set(ctx, "k", []byte("v")), ShouldBeNil)
			So(store.Delete(ctx, "k"), ShouldBeNil)
			_, err := store.Get(ctx, "k")

			Convey("Then the key should be gone", func() {
				So(err, ShouldEqual, kvstore.ErrKeyNotFound)
			})

			Convey("And deleting again should not error", func() {
				So(store.Delete(ctx, "k"), ShouldBeNil)
			})
		})

		Convey("When mutating a value returned by Get", func() {
			So(store.Set(ctx, "k", []byte("abc")), ShouldBeNil)
			got, _ := store.Get(ctx, "k")
			got[0] = 'x'
			fresh, err := store.Get(ctx, "k")

			Convey("Then the stored value should be unaffected", func() {
				So(err, ShouldBeNil)
				So(string(fresh), ShouldEqual, "abc")
			})
		})

		Convey("When the store is closed", func() {
			So(store.Close(), ShouldBeNil)

			Convey("Then operations should report ErrClosed", func() {
				_, err := store.Get(ctx, "k")
				So(err, ShouldEqual, kvstore.ErrClosed)
				So(store.Set(ctx, "k", []byte("v")), ShouldEqual, kvstore.ErrClosed)
				So(store.Delete(ctx, "k"), ShouldEqual, kvstore.ErrClosed)
			})
		})
	})
}
