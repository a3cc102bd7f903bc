// Package dexpaprika implements the endpoint operations against the
// DexPaprika market-data API. Each operation issues exactly one GET, keeps
// the upstream body verbatim as raw_data, and derives a display projection
// from it. No operation retries, caches, or batches.
package dexpaprika

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
	"github.com/donbagger/plugin-dexpaprika/internal/httpx"
	"github.com/donbagger/plugin-dexpaprika/internal/model"
)

// Documented defaults for list operations.
const (
	DefaultPage    = 0
	DefaultLimit   = 10
	DefaultOrderBy = "volume_usd"
	DefaultSort    = "desc"
)

// MinSearchQueryLen is the only client-side precondition in the component
// set: search queries shorter than this (after trimming) never reach the
// network.
const MinSearchQueryLen = 3

// OrderByValues and SortValues document the upstream enumerations. Values
// outside them are forwarded as-is; upstream rejects them through the
// standard error path.
var (
	OrderByValues = []string{"volume_usd", "price_usd", "transactions", "last_price_change_usd_24h", "created_at"}
	SortValues    = []string{"asc", "desc"}
)

type Client struct {
	http *httpx.Client
	now  func() time.Time
}

func New(httpClient *httpx.Client) *Client {
	return &Client{http: httpClient, now: time.Now}
}

// ListQuery carries the shared pagination/ordering parameters. Zero values
// mean "use the documented default".
type ListQuery struct {
	Page    int
	Limit   int
	OrderBy string
	Sort    string
}

func (q ListQuery) values(withOrdering bool) url.Values {
	page := q.Page
	if page < 0 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	if withOrdering {
		orderBy := q.OrderBy
		if orderBy == "" {
			orderBy = DefaultOrderBy
		}
		sort := q.Sort
		if sort == "" {
			sort = DefaultSort
		}
		v.Set("order_by", orderBy)
		v.Set("sort", sort)
	}
	return v
}

// GetNetworks lists all supported blockchain networks.
func (c *Client) GetNetworks(ctx context.Context) (model.Envelope, error) {
	body, err := c.http.Get(ctx, "/networks", nil)
	if err != nil {
		return model.Envelope{}, err
	}
	var networks []model.Network
	if err := json.Unmarshal(body, &networks); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode networks response", err)
	}
	return envelope(c.formatNetworks(networks), body), nil
}

// GetNetworkDexes lists the DEXes available on one network.
func (c *Client) GetNetworkDexes(ctx context.Context, network string, q ListQuery) (model.Envelope, error) {
	path := "/networks/" + url.PathEscape(network) + "/dexes"
	body, err := c.http.Get(ctx, path, q.values(false))
	if err != nil {
		return model.Envelope{}, notFound(err, fmt.Sprintf("network %q not found", network))
	}
	var resp model.DexesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode dexes response", err)
	}
	return envelope(c.formatDexes(network, resp), body), nil
}

// GetTopPools lists top pools across all networks.
func (c *Client) GetTopPools(ctx context.Context, q ListQuery) (model.Envelope, error) {
	body, err := c.http.Get(ctx, "/pools", q.values(true))
	if err != nil {
		return model.Envelope{}, err
	}
	var resp model.PoolsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode pools response", err)
	}
	return envelope(c.formatPoolList("Top Liquidity Pools Across All Networks", "", "", resp), body), nil
}

// GetNetworkPools lists top pools on one network.
func (c *Client) GetNetworkPools(ctx context.Context, network string, q ListQuery) (model.Envelope, error) {
	path := "/networks/" + url.PathEscape(network) + "/pools"
	body, err := c.http.Get(ctx, path, q.values(true))
	if err != nil {
		return model.Envelope{}, notFound(err, fmt.Sprintf("network %q not found", network))
	}
	var resp model.PoolsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode pools response", err)
	}
	title := fmt.Sprintf("Top Pools on %s", displayName(network))
	return envelope(c.formatPoolList(title, network, "", resp), body), nil
}

// GetDexPools lists top pools on one DEX of one network.
func (c *Client) GetDexPools(ctx context.Context, network, dex string, q ListQuery) (model.Envelope, error) {
	path := "/networks/" + url.PathEscape(network) + "/dexes/" + url.PathEscape(dex) + "/pools"
	body, err := c.http.Get(ctx, path, q.values(true))
	if err != nil {
		return model.Envelope{}, notFound(err, fmt.Sprintf("DEX %q not found on network %q", dex, network))
	}
	var resp model.PoolsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode pools response", err)
	}
	title := fmt.Sprintf("Top Pools on %s (%s)", displayName(dex), displayName(network))
	return envelope(c.formatPoolList(title, network, dex, resp), body), nil
}

// GetPoolDetails fetches one pool. inversed is forwarded to upstream as an
// opaque parameter; this client does not reinterpret price fields.
func (c *Client) GetPoolDetails(ctx context.Context, network, poolAddress string, inversed bool) (model.Envelope, error) {
	path := "/networks/" + url.PathEscape(network) + "/pools/" + url.PathEscape(poolAddress)
	query := url.Values{}
	query.Set("inversed", strconv.FormatBool(inversed))
	body, err := c.http.Get(ctx, path, query)
	if err != nil {
		return model.Envelope{}, notFound(err, fmt.Sprintf("pool %q not found on network %q", poolAddress, network))
	}
	var pool model.Pool
	if err := json.Unmarshal(body, &pool); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode pool response", err)
	}
	return envelope(c.formatPoolDetails(network, pool), body), nil
}

// GetTokenDetails fetches one token.
func (c *Client) GetTokenDetails(ctx context.Context, network, tokenAddress string) (model.Envelope, error) {
	path := "/networks/" + url.PathEscape(network) + "/tokens/" + url.PathEscape(tokenAddress)
	body, err := c.http.Get(ctx, path, nil)
	if err != nil {
		return model.Envelope{}, notFound(err, fmt.Sprintf("token %q not found on network %q", tokenAddress, network))
	}
	var token model.Token
	if err := json.Unmarshal(body, &token); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode token response", err)
	}
	return envelope(c.formatTokenDetails(network, token), body), nil
}

// Search queries tokens, pools and DEXes at once. The query must be at
// least MinSearchQueryLen characters after trimming; violations are
// rejected before any network call.
func (c *Client) Search(ctx context.Context, query string) (model.Envelope, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < MinSearchQueryLen {
		return model.Envelope{}, derr.New(derr.CodeUsage,
			fmt.Sprintf("search query must be at least %d characters", MinSearchQueryLen))
	}

	values := url.Values{}
	values.Set("query", trimmed)
	body, err := c.http.Get(ctx, "/search", values)
	if err != nil {
		if e, ok := derr.As(err); ok && e.Status == 400 {
			return model.Envelope{}, derr.WithStatus(derr.CodeUpstream, e.Status,
				"search failed: try a longer or more specific query")
		}
		return model.Envelope{}, err
	}
	var resp model.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode search response", err)
	}
	return envelope(c.formatSearch(trimmed, resp), body), nil
}

// GetStats fetches ecosystem-wide entity counts.
func (c *Client) GetStats(ctx context.Context) (model.Envelope, error) {
	body, err := c.http.Get(ctx, "/stats", nil)
	if err != nil {
		return model.Envelope{}, err
	}
	var stats model.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return model.Envelope{}, derr.Wrap(derr.CodeUnavailable, "decode stats response", err)
	}
	return envelope(c.formatStats(stats), body), nil
}

func envelope(view any, raw []byte) model.Envelope {
	return model.Envelope{FormattedResponse: view, RawData: json.RawMessage(raw)}
}

// notFound refines a transport-level 404 with the resource kind the
// operation was after; every other error passes through untouched.
func notFound(err error, message string) error {
	if e, ok := derr.As(err); ok && e.Code == derr.CodeNotFound {
		return derr.WithStatus(derr.CodeNotFound, e.Status, message)
	}
	return err
}
