package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/MNThomson/datadog-cli/internal/model"
)

const eventsSearchPath = "/api/v2/events"

// EventsQuery describes an events search. Limit <= 0 means fetch
// everything the time range matches.
type EventsQuery struct {
	Query string
	From  string
	To    string
	Limit int
}

type eventsSearchResponse struct {
	Data []model.EventEntry `json:"data"`
	Meta *searchMeta        `json:"meta"`
}

// SearchEvents runs a paginated events search and returns the accumulated
// entries. The events API takes its filter as URL query parameters.
func (c *Client) SearchEvents(ctx context.Context, q EventsQuery) ([]model.EventEntry, error) {
	var (
		all    []model.EventEntry
		cursor string
	)

	for {
		size := pageSize(q.Limit, len(all))
		if size == 0 {
			break
		}

		params := url.Values{}
		params.Set("filter[query]", q.Query)
		params.Set("filter[from]", q.From)
		params.Set("filter[to]", q.To)
		params.Set("page[limit]", strconv.Itoa(size))
		if cursor != "" {
			params.Set("page[cursor]", cursor)
		}

		c.log.Debug("requesting events page",
			zap.String("query", q.Query),
			zap.Int("page_size", size),
			zap.String("cursor", cursor),
		)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+eventsSearchPath+"?"+params.Encode(), nil)
		if err != nil {
			return all, fmt.Errorf("building request: %w", err)
		}

		raw, err := c.do(req)
		if err != nil {
			return all, err
		}

		var page eventsSearchResponse
		if err := json.Unmarshal(raw, &page); err != nil {
			return all, fmt.Errorf("failed to parse response: %w", err)
		}

		all = append(all, page.Data...)

		cursor = page.Meta.after()
		if cursor == "" {
			break
		}
		if q.Limit > 0 && len(all) >= q.Limit {
			break
		}
	}

	c.log.Debug("events search complete", zap.Int("total", len(all)))
	return all, nil
}
