package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// fetchAllPages drives a REST endpoint through successive pages until an
// empty page is returned, concatenating the results. Rate limiting happens
// inside the doer, between every request.
func fetchAllPages[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	items := make([]T, 0)
	page := 1
	for {
		separator := "?"
		if strings.Contains(endpoint, "?") {
			separator = "&"
		}
		paged := fmt.Sprintf("%s%spage=%d&per_page=%d", endpoint, separator, page, c.pageSize)

		body, err := c.get(ctx, c.doer, paged)
		if err != nil {
			return nil, err
		}

		var pageItems []T
		if err := json.Unmarshal(body, &pageItems); err != nil {
			return nil, fmt.Errorf("unmarshalling page %d of %s: %w", page, endpoint, err)
		}
		if len(pageItems) == 0 {
			break
		}

		items = append(items, pageItems...)
		page++
	}

	return items, nil
}

type searchPage[T any] struct {
	TotalCount int `json:"total_count"`
	Items      []T `json:"items"`
}

// searchAllPages pages through a search endpoint. The platform caps search
// results at 1000 per query; hitting the cap logs a truncation warning.
func searchAllPages[T any](ctx context.Context, c *Client, path, query string) ([]T, error) {
	items := make([]T, 0)
	page := 1
	for {
		endpoint := fmt.Sprintf("%s?q=%s&page=%d&per_page=%d", path, url.QueryEscape(query), page, c.pageSize)

		body, err := c.get(ctx, c.searchDoer, endpoint)
		if err != nil {
			return nil, err
		}

		var resp searchPage[T]
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("unmarshalling search page %d of %s: %w", page, path, err)
		}
		if len(resp.Items) == 0 {
			break
		}

		items = append(items, resp.Items...)
		if len(items) >= resp.TotalCount {
			break
		}
		if len(items) >= c.maxSearchResults {
			c.l.Warnf("search results for %q truncated at %d, the github search cap", query, c.maxSearchResults)
			break
		}
		page++
	}

	return items, nil
}
