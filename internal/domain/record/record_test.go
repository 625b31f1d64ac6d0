package record_test

import (
	"math"
	"testing"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTraitReported(t *testing.T) {
	Convey("Given score records with varying trait_reported fields", t, func() {
		Convey("When the field is present", func() {
			r := record.Record{"trait_reported": "Body mass index"}
			So(r.TraitReported(), ShouldEqual, "Body mass index")
		})

		Convey("When the field is a present empty string", func() {
			r := record.Record{"trait_reported": ""}

			Convey("Then it should be counted literally, not as NR", func() {
				So(r.TraitReported(), ShouldEqual, "")
			})
		})

		Convey("When the field is absent", func() {
			r := record.Record{"id": "PGS000001"}
			So(r.TraitReported(), ShouldEqual, record.NR)
		})

		Convey("When the field is null", func() {
			r := record.Record{"trait_reported": nil}
			So(r.TraitReported(), ShouldEqual, record.NR)
		})
	})
}

func TestReleaseYear(t *testing.T) {
	Convey("Given score records with varying date_release fields", t, func() {
		Convey("When the date has a leading 4-digit year", func() {
			r := record.Record{"date_release": "2021-03-15"}
			y, ok := r.ReleaseYear()
			So(ok, ShouldBeTrue)
			So(y, ShouldEqual, "2021")
		})

		Convey("When the date is too short", func() {
			r := record.Record{"date_release": "21"}
			_, ok := r.ReleaseYear()
			So(ok, ShouldBeFalse)
		})

		Convey("When the date does not start with digits", func() {
			r := record.Record{"date_release": "n/a-2021"}
			_, ok := r.ReleaseYear()
			So(ok, ShouldBeFalse)
		})

		Convey("When the field is absent", func() {
			r := record.Record{}
			_, ok := r.ReleaseYear()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestVariantsNumber(t *testing.T) {
	Convey("Given score records with varying variants_number fields", t, func() {
		Convey("When the value is a JSON number", func() {
			r := record.Record{"variants_number": float64(847)}
			n, ok := r.VariantsNumber()
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 847)
		})

		Convey("When the value is a numeric string", func() {
			r := record.Record{"variants_number": " 120 "}
			n, ok := r.VariantsNumber()
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 120)
		})

		Convey("When the value is not finite", func() {
			r := record.Record{"variants_number": math.Inf(1)}
			_, ok := r.VariantsNumber()
			So(ok, ShouldBeFalse)

			r = record.Record{"variants_number": math.NaN()}
			_, ok = r.VariantsNumber()
			So(ok, ShouldBeFalse)
		})

		Convey("When the value is absent or unparseable", func() {
			_, ok := record.Record{}.VariantsNumber()
			So(ok, ShouldBeFalse)

			_, ok = record.Record{"variants_number": "many"}.VariantsNumber()
			So(ok, ShouldBeFalse)

			_, ok = record.Record{"variants_number": nil}.VariantsNumber()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestTraitCategories(t *testing.T) {
	Convey("Given trait records with varying trait_categories fields", t, func() {
		Convey("When categories are listed", func() {
			r := record.Record{"trait_categories": []any{"Cancer", "Other disease"}}
			So(r.TraitCategories(), ShouldResemble, []string{"Cancer", "Other disease"})
		})

		Convey("When a listed category is an empty string", func() {
			r := record.Record{"trait_categories": []any{""}}

			Convey("Then it should be kept literally", func() {
				So(r.TraitCategories(), ShouldResemble, []string{""})
			})
		})

		Convey("When the field is absent", func() {
			r := record.Record{"label": "EFO_0000305"}
			So(r.TraitCategories(), ShouldResemble, []string{record.NR})
		})

		Convey("When the list is empty", func() {
			r := record.Record{"trait_categories": []any{}}
			So(r.TraitCategories(), ShouldResemble, []string{record.NR})
		})
	})
}
