package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/MNThomson/datadog-cli/internal/model"
)

const logsSearchPath = "/api/v2/logs/events/search"

// LogsQuery describes a logs search. Limit <= 0 means fetch everything
// the time range matches.
type LogsQuery struct {
	Query string
	From  string
	To    string
	Limit int
}

type logsSearchRequest struct {
	Filter logsFilter  `json:"filter"`
	Page   pageOptions `json:"page"`
	Sort   string      `json:"sort"`
}

type logsFilter struct {
	Query string `json:"query"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type pageOptions struct {
	Limit  int    `json:"limit"`
	Cursor string `json:"cursor,omitempty"`
}

type logsSearchResponse struct {
	Data []model.LogEntry `json:"data"`
	Meta *searchMeta      `json:"meta"`
}

// SearchLogs runs a paginated logs search, invoking onPage with each page
// of results as it arrives. Pages are requested strictly one at a time.
// Returns the total number of entries delivered.
func (c *Client) SearchLogs(ctx context.Context, q LogsQuery, onPage func([]model.LogEntry) error) (int, error) {
	var (
		total  int
		cursor string
	)

	for {
		size := pageSize(q.Limit, total)
		if size == 0 {
			break
		}

		body, err := json.Marshal(logsSearchRequest{
			Filter: logsFilter{Query: q.Query, From: q.From, To: q.To},
			Page:   pageOptions{Limit: size, Cursor: cursor},
			Sort:   "timestamp",
		})
		if err != nil {
			return total, fmt.Errorf("encoding request: %w", err)
		}

		c.log.Debug("requesting logs page",
			zap.String("query", q.Query),
			zap.Int("page_size", size),
			zap.String("cursor", cursor),
		)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logsSearchPath, bytes.NewReader(body))
		if err != nil {
			return total, fmt.Errorf("building request: %w", err)
		}

		raw, err := c.do(req)
		if err != nil {
			return total, err
		}

		var page logsSearchResponse
		if err := json.Unmarshal(raw, &page); err != nil {
			return total, fmt.Errorf("failed to parse response: %w", err)
		}

		if len(page.Data) > 0 {
			if err := onPage(page.Data); err != nil {
				return total, err
			}
			total += len(page.Data)
		}

		cursor = page.Meta.after()
		if cursor == "" {
			break
		}
		if q.Limit > 0 && total >= q.Limit {
			break
		}
	}

	c.log.Debug("logs search complete", zap.Int("total", total))
	return total, nil
}
