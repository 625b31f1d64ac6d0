package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/catalog"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
	. "github.com/smartystreets/goconvey/convey"
)

// pagedHandler serves records in envelope pages honoring limit/offset.
func pagedHandler(total int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		var results []record.Record
		for i := offset; i < total && i < offset+limit; i++ {
			results = append(results, record.Record{
				"id":             fmt.Sprintf("PGS%06d", i),
				"trait_reported": "BMI",
			})
		}

		var next *string
		if offset+limit < total {
			n := fmt.Sprintf("/score/all?limit=%d&offset=%d", limit, offset+limit)
			next = &n
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results, "next": next})
	}
}

func TestFetchAllPagination(t *testing.T) {
	Convey("Given a paged endpoint with 8 records", t, func() {
		srv := httptest.NewServer(pagedHandler(8))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching with page size 3", func() {
			records, err := client.FetchAll(context.Background(), catalog.KindScore, 3)

			Convey("Then all pages concatenate in request order", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 8)
				So(records[0]["id"], ShouldEqual, "PGS000000")
				So(records[7]["id"], ShouldEqual, "PGS000007")
			})
		})

		Convey("When the total is an exact multiple of the page size", func() {
			// The final page is full, so the nil next indicator triggers one
			// extra request that returns zero records.
			records, err := client.FetchAll(context.Background(), catalog.KindScore, 4)

			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 8)
		})
	})

	Convey("Given an endpoint whose first page is empty", t, func() {
		srv := httptest.NewServer(pagedHandler(0))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching", func() {
			records, err := client.FetchAll(context.Background(), catalog.KindScore, 50)

			Convey("Then the result is an empty sequence", func() {
				So(err, ShouldBeNil)
				So(records, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a non-positive page size", t, func() {
		client := catalog.New()

		Convey("When fetching", func() {
			_, err := client.FetchAll(context.Background(), catalog.KindScore, 0)

			Convey("Then the call is rejected before any request", func() {
				So(errors.Is(err, catalog.ErrInvalidPageSize), ShouldBeTrue)
			})
		})
	})
}

func TestFetchAllResponseShapes(t *testing.T) {
	Convey("Given an endpoint answering with a bare record array", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]record.Record{
				{"id": "PGS000001"},
				{"id": "PGS000002"},
			})
		}))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching with a larger page size", func() {
			records, err := client.FetchAll(context.Background(), catalog.KindScore, 50)

			Convey("Then the short bare page terminates the run", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given an endpoint answering with a non-record body", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`"just a string"`))
		}))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching", func() {
			_, err := client.FetchAll(context.Background(), catalog.KindTrait, 50)

			Convey("Then a FormatError carrying the URL surfaces", func() {
				var formatErr *catalog.FormatError
				So(errors.As(err, &formatErr), ShouldBeTrue)
				So(formatErr.URL, ShouldContainSubstring, "trait/all")
			})
		})
	})

	Convey("Given an envelope without a results array", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"count": 12, "next": null}`))
		}))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching", func() {
			_, err := client.FetchAll(context.Background(), catalog.KindScore, 50)

			var formatErr *catalog.FormatError
			So(errors.As(err, &formatErr), ShouldBeTrue)
		})
	})
}

func TestFetchAllHTTPFailure(t *testing.T) {
	Convey("Given an endpoint that fails on the second page", t, func() {
		var requests int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests > 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			next := "more"
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []record.Record{{"id": "PGS000001"}, {"id": "PGS000002"}},
				"next":    next,
			})
		}))
		defer srv.Close()
		client := catalog.New(catalog.WithBaseURL(srv.URL))

		Convey("When fetching with page size 2", func() {
			records, err := client.FetchAll(context.Background(), catalog.KindScore, 2)

			Convey("Then the run fails wholesale with an HTTPError", func() {
				var httpErr *catalog.HTTPError
				So(errors.As(err, &httpErr), ShouldBeTrue)
				So(httpErr.StatusCode, ShouldEqual, http.StatusBadGateway)
				So(httpErr.URL, ShouldContainSubstring, "offset=2")
				So(records, ShouldBeNil)
			})
		})
	})
}
