// Package catalog implements the paginated PGS Catalog REST client.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/logger"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/metrics"
)

// Kind selects which catalog entity type a pipeline invocation targets.
type Kind string

const (
	KindScore Kind = "score"
	KindTrait Kind = "trait"
)

// path returns the REST path for the kind, e.g. "score/all".
func (k Kind) path() string { return string(k) + "/all" }

// Default client configuration constants.
const (
	defaultBaseURL = "https://www.pgscatalog.org/rest"
	defaultTimeout = 30 * time.Second
)

// Client retrieves all records of one resource type from the remote paged
// REST endpoint. Pages are fetched strictly sequentially: each page's stop
// condition depends on the previous page's content.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

// New creates a catalog client with default configuration.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger.Noop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchAll pages through the endpoint for kind, accumulating every record.
// It stops when a page comes back empty, or when the response advertises no
// next page and the page was shorter than pageSize. A failure on any page
// discards the whole run; no partial data is returned.
func (c *Client) FetchAll(ctx context.Context, kind Kind, pageSize int) ([]record.Record, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}

	var all []record.Record
	offset := 0
	for {
		page, next, err := c.fetchPage(ctx, kind, pageSize, offset)
		if err != nil {
			return nil, err
		}
		metrics.RecordPageFetched(string(kind), len(page))
		c.logger.Debug(ctx, "fetched page",
			logger.String("kind", string(kind)),
			logger.Int("offset", offset),
			logger.Int("records", len(page)),
		)

		if len(page) == 0 {
			return all, nil
		}
		all = append(all, page...)
		offset += len(page)

		if next == "" && len(page) < pageSize {
			return all, nil
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, kind Kind, limit, offset int) ([]record.Record, string, error) {
	url := fmt.Sprintf("%s/%s?format=json&limit=%d&offset=%d", c.baseURL, kind.path(), limit, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	return decodePage(url, resp.Body)
}
