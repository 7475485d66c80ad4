package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"fpl-stats-mcp/internal/store"
)

// Dataset names used as cache keys in the JSON store.
const (
	DatasetBootstrap = "bootstrap_static"
	DatasetFixtures  = "fixtures"
)

// Client fetches public FPL API endpoints. The bootstrap and fixtures
// datasets are cached on disk through the store; per-manager and
// per-player endpoints are fetched fresh every call. There is no retry
// logic: upstream failures propagate to the caller.
type Client struct {
	HTTP      *http.Client
	Store     *store.JSONStore
	BaseURL   string
	UserAgent string
	Logger    *zap.Logger
}

func NewClient(st *store.JSONStore, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		Store:     st,
		BaseURL:   "https://fantasy.premierleague.com/api",
		UserAgent: "fpl-stats-mcp/1.0",
		Logger:    logger,
	}
}

// get downloads urlPath (like "/fixtures/") and returns the body.
func (c *Client) get(ctx context.Context, urlPath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", urlPath)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf("GET %s failed: status %d", urlPath, resp.StatusCode)
	}
	c.Logger.Debug("fetched", zap.String("path", urlPath), zap.Int("bytes", len(body)))
	return body, nil
}

// dataset returns the cached bytes for name, downloading and persisting
// them first on a miss or when force is set. The write replaces the
// previous file wholesale.
func (c *Client) dataset(ctx context.Context, name, urlPath string, force bool) ([]byte, error) {
	if !force && c.Store.Exists(name) {
		return c.Store.Read(name)
	}
	body, err := c.get(ctx, urlPath)
	if err != nil {
		return nil, err
	}
	if err := c.Store.Write(name, body, false); err != nil {
		return nil, err
	}
	return body, nil
}

// Bootstrap returns the decoded bootstrap-static dataset.
func (c *Client) Bootstrap(ctx context.Context, force bool) (*Bootstrap, error) {
	raw, err := c.dataset(ctx, DatasetBootstrap, "/bootstrap-static/", force)
	if err != nil {
		return nil, err
	}
	var bs Bootstrap
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil, errors.Wrap(err, "parse bootstrap-static")
	}
	return &bs, nil
}

// Fixtures returns all fixtures for the season.
func (c *Client) Fixtures(ctx context.Context, force bool) ([]Fixture, error) {
	raw, err := c.dataset(ctx, DatasetFixtures, "/fixtures/", force)
	if err != nil {
		return nil, err
	}
	var out []Fixture
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "parse fixtures")
	}
	return out, nil
}

// ElementSummary returns a player's detailed season history.
func (c *Client) ElementSummary(ctx context.Context, elementID int) (*ElementSummary, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/element-summary/%d/", elementID))
	if err != nil {
		return nil, err
	}
	var out ElementSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(err, "parse element-summary/%d", elementID)
	}
	return &out, nil
}

// Picks returns a manager's squad picks for one gameweek.
func (c *Client) Picks(ctx context.Context, entryID, gw int) (*PicksResponse, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gw))
	if err != nil {
		return nil, err
	}
	var out PicksResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(err, "parse entry/%d picks", entryID)
	}
	return &out, nil
}

// Transfers returns all transfers a manager has made this season.
func (c *Client) Transfers(ctx context.Context, entryID int) ([]Transfer, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/entry/%d/transfers/", entryID))
	if err != nil {
		return nil, err
	}
	var out []Transfer
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(err, "parse entry/%d transfers", entryID)
	}
	return out, nil
}

// History returns a manager's season-by-season history and chip usage.
func (c *Client) History(ctx context.Context, entryID int) (*ManagerHistory, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/entry/%d/history/", entryID))
	if err != nil {
		return nil, err
	}
	var out ManagerHistory
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(err, "parse entry/%d history", entryID)
	}
	return &out, nil
}
