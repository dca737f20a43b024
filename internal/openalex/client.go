// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SpectraGen/openalex-scrapping/internal/httputil"
	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// worksBase is the OpenAlex works endpoint. Declared as a var so tests can
// substitute an httptest server.
var worksBase = "https://api.openalex.org/works"

// Client issues requests against the OpenAlex works API.
type Client struct {
	HTTP *http.Client

	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string

	// UserAgent is sent with every request.
	UserAgent string
}

// Count returns the total number of works matching the query. It requests a
// single-result page and reads the count from the response metadata.
func (c *Client) Count(ctx context.Context, q Query) (int, error) {
	resp, err := c.get(ctx, q.params(1, 1))
	if err != nil {
		return 0, err
	}
	return resp.Meta.Count, nil
}

// FetchPage fetches one result page and decodes it into typed works. An empty
// slice with a nil error means the query is exhausted.
func (c *Client) FetchPage(ctx context.Context, q Query, page, perPage int) ([]types.Work, error) {
	resp, err := c.get(ctx, q.params(page, perPage))
	if err != nil {
		return nil, err
	}
	works := make([]types.Work, 0, len(resp.Results))
	for _, raw := range resp.Results {
		works = append(works, decodeWork(raw))
	}
	return works, nil
}

func (c *Client) get(ctx context.Context, params url.Values) (*worksResponse, error) {
	if c.Mailto != "" {
		params.Set("mailto", c.Mailto)
	}
	reqURL := worksBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var wr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}
	return &wr, nil
}
