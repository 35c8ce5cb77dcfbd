package memberapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"member-qa/config"
	"member-qa/store"

	"go.uber.org/zap"
)

// Client fetches the member-message corpus from the remote source, one page
// at a time.
type Client struct {
	baseURL    string
	pageLimit  int
	maxRetries int
	httpClient *http.Client
	logger     *zap.Logger
}

// page is the wire shape of a single list response. A missing "items" key
// decodes to an empty slice and a missing "total" stays nil, which the
// stopping conditions treat as "no more data" and "unbounded" respectively.
type page struct {
	Items []store.Message `json:"items"`
	Total *int            `json:"total"`
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.APIBaseURL,
		pageLimit:  cfg.FetchPageLimit,
		maxRetries: cfg.FetchMaxRetries,
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		logger:     logger,
	}
}

// FetchAll pages through the remote source with skip/limit until a page comes
// back empty or the reported total is reached. It never fails outright:
// transport errors are retried per page up to the configured attempt count,
// and any terminal condition (retries exhausted, non-200 status, undecodable
// body) aborts the load keeping whatever was already accumulated.
func (c *Client) FetchAll(ctx context.Context) []store.Message {
	var fetched []store.Message
	skip := 0

	for {
		pg, ok := c.fetchPage(ctx, skip)
		if !ok {
			return fetched
		}

		if len(pg.Items) == 0 {
			c.logger.Info("No more data from message source", zap.Int("skip", skip))
			return fetched
		}

		fetched = append(fetched, pg.Items...)
		c.logger.Info("Fetched message page",
			zap.Int("count", len(pg.Items)),
			zap.Int("total_fetched", len(fetched)))

		if pg.Total != nil && len(fetched) >= *pg.Total {
			return fetched
		}

		skip += c.pageLimit
	}
}

// fetchPage requests a single page, retrying transport failures. A false
// return means the whole load should stop.
func (c *Client) fetchPage(ctx context.Context, skip int) (page, bool) {
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.doRequest(ctx, skip)
		if err != nil {
			c.logger.Warn("Message source request failed",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", c.maxRetries),
				zap.Error(err))
			if attempt == c.maxRetries {
				c.logger.Error("Max retries reached, stopping data fetch", zap.Int("skip", skip))
				return page{}, false
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.logger.Warn("Message source returned non-200 status",
				zap.Int("status", resp.StatusCode),
				zap.Int("skip", skip))
			return page{}, false
		}

		var pg page
		err = json.NewDecoder(resp.Body).Decode(&pg)
		resp.Body.Close()
		if err != nil {
			c.logger.Warn("Failed to decode message page", zap.Int("skip", skip), zap.Error(err))
			return page{}, false
		}
		return pg, true
	}
	return page{}, false
}

func (c *Client) doRequest(ctx context.Context, skip int) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(c.pageLimit))
	req.URL.RawQuery = query.Encode()

	return c.httpClient.Do(req)
}
