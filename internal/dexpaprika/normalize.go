package dexpaprika

import (
	"fmt"

	"github.com/donbagger/plugin-dexpaprika/internal/format"
	"github.com/donbagger/plugin-dexpaprika/internal/model"
)

// Display truncation limits. raw_data and the count fields always reflect
// the true upstream lengths.
const (
	poolDisplayLimit   = 5
	searchDisplayLimit = 3
)

type NetworksView struct {
	Title        string   `json:"title"`
	Timestamp    string   `json:"timestamp"`
	NetworkCount int      `json:"network_count"`
	Networks     []string `json:"networks"`
}

type DexesView struct {
	Title      string   `json:"title"`
	Timestamp  string   `json:"timestamp"`
	Network    string   `json:"network"`
	Pagination string   `json:"pagination"`
	DexCount   int      `json:"dex_count"`
	Dexes      []string `json:"dexes"`
}

type PoolListView struct {
	Title      string          `json:"title"`
	Timestamp  string          `json:"timestamp"`
	Network    string          `json:"network,omitempty"`
	Dex        string          `json:"dex,omitempty"`
	Pagination string          `json:"pagination"`
	PoolCount  int             `json:"pool_count"`
	TopPools   []PoolListEntry `json:"top_pools"`
}

type PoolListEntry struct {
	Name      string `json:"name"`
	Dex       string `json:"dex"`
	Chain     string `json:"chain"`
	VolumeUSD string `json:"volume_usd"`
	PriceUSD  string `json:"price_usd"`
	Change24h string `json:"change_24h"`
}

type PoolDetailsView struct {
	Title        string   `json:"title"`
	Timestamp    string   `json:"timestamp"`
	Pair         string   `json:"pair"`
	Dex          string   `json:"dex"`
	Chain        string   `json:"chain"`
	PriceUSD     string   `json:"price_usd"`
	VolumeUSD    string   `json:"volume_usd"`
	Fee          string   `json:"fee"`
	Transactions int64    `json:"transactions"`
	Change24h    string   `json:"change_24h"`
	CreatedAt    string   `json:"created_at,omitempty"`
	Tokens       []string `json:"tokens"`
}

type TokenDetailsView struct {
	Title             string `json:"title"`
	Timestamp         string `json:"timestamp"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Chain             string `json:"chain"`
	PriceUSD          string `json:"price_usd"`
	MarketCapUSD      string `json:"market_cap_usd"`
	TotalSupply       string `json:"total_supply"`
	CirculatingSupply string `json:"circulating_supply"`
	Website           string `json:"website,omitempty"`
	Twitter           string `json:"twitter,omitempty"`
	Telegram          string `json:"telegram,omitempty"`
	Discord           string `json:"discord,omitempty"`
}

type SearchView struct {
	Title      string   `json:"title"`
	Timestamp  string   `json:"timestamp"`
	Query      string   `json:"query"`
	TokenCount int      `json:"token_count"`
	PoolCount  int      `json:"pool_count"`
	DexCount   int      `json:"dex_count"`
	TopTokens  []string `json:"top_tokens"`
	TopPools   []string `json:"top_pools"`
	TopDexes   []string `json:"top_dexes"`
}

type StatsView struct {
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
	Networks  int    `json:"networks"`
	Dexes     int    `json:"dexes"`
	Pools     int    `json:"pools"`
	Tokens    int    `json:"tokens"`
}

// displayName is cosmetic only; the original identifier keeps being used
// for path construction.
func displayName(id string) string {
	return format.TitleCase(id)
}

func (c *Client) formatNetworks(networks []model.Network) NetworksView {
	entries := make([]string, 0, len(networks))
	for _, n := range networks {
		name := n.DisplayName
		if name == "" {
			name = displayName(n.ID)
		}
		entry := fmt.Sprintf("%s (%s)", name, n.ID)
		if n.NativeAssetTicker != "" {
			entry += fmt.Sprintf(", native asset %s", n.NativeAssetTicker)
		}
		entries = append(entries, entry)
	}
	return NetworksView{
		Title:        "Supported Blockchain Networks",
		Timestamp:    format.Timestamp(c.now()),
		NetworkCount: len(networks),
		Networks:     entries,
	}
}

func (c *Client) formatDexes(network string, resp model.DexesResponse) DexesView {
	entries := make([]string, 0, len(resp.Dexes))
	for _, d := range resp.Dexes {
		entry := displayName(d.DexName)
		if d.Protocol != "" {
			entry += fmt.Sprintf(" (protocol: %s)", d.Protocol)
		}
		entries = append(entries, entry)
	}
	return DexesView{
		Title:      fmt.Sprintf("DEXes on %s", displayName(network)),
		Timestamp:  format.Timestamp(c.now()),
		Network:    displayName(network),
		Pagination: format.PageSummary(resp.PageInfo),
		DexCount:   len(resp.Dexes),
		Dexes:      entries,
	}
}

func (c *Client) formatPoolList(title, network, dex string, resp model.PoolsResponse) PoolListView {
	top := resp.Pools
	if len(top) > poolDisplayLimit {
		top = top[:poolDisplayLimit]
	}
	entries := make([]PoolListEntry, 0, len(top))
	for _, p := range top {
		entries = append(entries, PoolListEntry{
			Name:      format.PairName(p.Tokens),
			Dex:       displayName(p.DexName),
			Chain:     displayName(p.Chain),
			VolumeUSD: format.USD(p.VolumeUSD, format.VolumeDigits),
			PriceUSD:  format.USD(p.PriceUSD, format.PoolPriceDigits),
			Change24h: format.ChangePercent(p.LastPriceChangeUSD24h),
		})
	}

	view := PoolListView{
		Title:      title,
		Timestamp:  format.Timestamp(c.now()),
		Pagination: format.PageSummary(resp.PageInfo),
		PoolCount:  len(resp.Pools),
		TopPools:   entries,
	}
	if network != "" {
		view.Network = displayName(network)
	}
	if dex != "" {
		view.Dex = displayName(dex)
	}
	return view
}

func (c *Client) formatPoolDetails(network string, pool model.Pool) PoolDetailsView {
	pair := format.PairName(pool.Tokens)
	tokens := make([]string, 0, len(pool.Tokens))
	for _, t := range pool.Tokens {
		entry := fmt.Sprintf("%s (%s)", t.Name, t.Symbol)
		if t.ID != "" {
			entry += fmt.Sprintf(" at %s", t.ID)
		}
		tokens = append(tokens, entry)
	}
	chain := pool.Chain
	if chain == "" {
		chain = network
	}
	return PoolDetailsView{
		Title:        fmt.Sprintf("%s Pool on %s", pair, displayName(pool.DexName)),
		Timestamp:    format.Timestamp(c.now()),
		Pair:         pair,
		Dex:          displayName(pool.DexName),
		Chain:        displayName(chain),
		PriceUSD:     format.USD(pool.PriceUSD, format.PoolPriceDigits),
		VolumeUSD:    format.USD(pool.VolumeUSD, format.VolumeDigits),
		Fee:          format.Fee(pool.Fee),
		Transactions: pool.Transactions,
		Change24h:    format.ChangePercent(pool.LastPriceChangeUSD24h),
		CreatedAt:    pool.CreatedAt,
		Tokens:       tokens,
	}
}

func (c *Client) formatTokenDetails(network string, token model.Token) TokenDetailsView {
	chain := token.Chain
	if chain == "" {
		chain = network
	}
	return TokenDetailsView{
		Title:             fmt.Sprintf("%s (%s) on %s", token.Name, token.Symbol, displayName(chain)),
		Timestamp:         format.Timestamp(c.now()),
		Name:              token.Name,
		Symbol:            token.Symbol,
		Chain:             displayName(chain),
		PriceUSD:          format.USD(token.PriceUSD, format.TokenPriceDigits),
		MarketCapUSD:      format.USD(token.MarketCapUSD, format.VolumeDigits),
		TotalSupply:       format.Amount(token.TotalSupply, 0),
		CirculatingSupply: format.Amount(token.CirculatingSupply, 0),
		Website:           token.Website,
		Twitter:           token.Twitter,
		Telegram:          token.Telegram,
		Discord:           token.Discord,
	}
}

func (c *Client) formatSearch(query string, resp model.SearchResponse) SearchView {
	tokens := make([]string, 0, searchDisplayLimit)
	for i, t := range resp.Tokens {
		if i == searchDisplayLimit {
			break
		}
		tokens = append(tokens, fmt.Sprintf("%s (%s) on %s, price %s",
			t.Name, t.Symbol, displayName(t.Chain), format.USD(t.PriceUSD, format.TokenPriceDigits)))
	}
	pools := make([]string, 0, searchDisplayLimit)
	for i, p := range resp.Pools {
		if i == searchDisplayLimit {
			break
		}
		pools = append(pools, fmt.Sprintf("%s on %s (%s), volume %s",
			format.PairName(p.Tokens), displayName(p.DexName), displayName(p.Chain),
			format.USD(p.VolumeUSD, format.VolumeDigits)))
	}
	dexes := make([]string, 0, searchDisplayLimit)
	for i, d := range resp.Dexes {
		if i == searchDisplayLimit {
			break
		}
		dexes = append(dexes, fmt.Sprintf("%s on %s", displayName(d.DexName), displayName(d.Chain)))
	}
	return SearchView{
		Title:      fmt.Sprintf("Search Results for %q", query),
		Timestamp:  format.Timestamp(c.now()),
		Query:      query,
		TokenCount: len(resp.Tokens),
		PoolCount:  len(resp.Pools),
		DexCount:   len(resp.Dexes),
		TopTokens:  tokens,
		TopPools:   pools,
		TopDexes:   dexes,
	}
}

func (c *Client) formatStats(stats model.Stats) StatsView {
	return StatsView{
		Title:     "DexPaprika Ecosystem Statistics",
		Timestamp: format.Timestamp(c.now()),
		Networks:  stats.Networks,
		Dexes:     stats.Dexes,
		Pools:     stats.Pools,
		Tokens:    stats.Tokens,
	}
}
