package freshness_test

import (
	"testing"
	"time"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/freshness"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsFresh(t *testing.T) {
	Convey("Given a 3-month validity window", t, func() {
		now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
		const months = 3

		Convey("When the entry is one day inside the window", func() {
			savedAt := now.AddDate(0, -months, 1)
			So(freshness.IsFresh(savedAt, now, months), ShouldBeTrue)
		})

		Convey("When the entry sits exactly on the boundary", func() {
			savedAt := now.AddDate(0, -months, 0)

			Convey("Then it is still fresh (inclusive boundary)", func() {
				So(freshness.IsFresh(savedAt, now, months), ShouldBeTrue)
			})
		})

		Convey("When the entry is one day past the boundary", func() {
			savedAt := now.AddDate(0, -months, -1)
			So(freshness.IsFresh(savedAt, now, months), ShouldBeFalse)
		})

		Convey("When the entry was saved ten days ago", func() {
			savedAt := now.AddDate(0, 0, -10)
			So(freshness.IsFresh(savedAt, now, months), ShouldBeTrue)
		})

		Convey("When the save time is the zero value", func() {
			So(freshness.IsFresh(time.Time{}, now, months), ShouldBeFalse)
		})

		Convey("When the cutoff crosses a month-end boundary", func() {
			// 3 calendar months before May 31 is Feb 31, which AddDate
			// normalizes to March 3 in a non-leap year.
			endOfMay := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
			savedAt := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
			So(freshness.IsFresh(savedAt, endOfMay, months), ShouldBeTrue)

			dayBefore := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
			So(freshness.IsFresh(dayBefore, endOfMay, months), ShouldBeFalse)
		})
	})
}
