package model

import "encoding/json"

// Network is a blockchain identified by a lowercase slug (e.g. "ethereum").
type Network struct {
	ID                string `json:"id"`
	DisplayName       string `json:"display_name"`
	NativeAssetTicker string `json:"native_asset_ticker,omitempty"`
	Explorer          string `json:"explorer,omitempty"`
}

// Dex is a decentralized exchange scoped to one network.
type Dex struct {
	DexID    string `json:"dex_id,omitempty"`
	DexName  string `json:"dex_name"`
	Chain    string `json:"chain"`
	Protocol string `json:"protocol,omitempty"`
}

// Token is identified by its on-chain address plus the chain it lives on.
// USD-denominated fields are pointers: absent upstream means nil, which
// display formatting must distinguish from an actual zero.
type Token struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Chain             string   `json:"chain"`
	Decimals          int      `json:"decimals,omitempty"`
	AddedAt           string   `json:"added_at,omitempty"`
	PriceUSD          *float64 `json:"price_usd,omitempty"`
	MarketCapUSD      *float64 `json:"market_cap_usd,omitempty"`
	TotalSupply       *float64 `json:"total_supply,omitempty"`
	CirculatingSupply *float64 `json:"circulating_supply,omitempty"`
	Description       string   `json:"description,omitempty"`
	Website           string   `json:"website,omitempty"`
	Twitter           string   `json:"twitter,omitempty"`
	Telegram          string   `json:"telegram,omitempty"`
	Discord           string   `json:"discord,omitempty"`
}

// Pool trades exactly one token pair; Tokens ordering (token0/token1) is
// meaningful and preserved verbatim from upstream.
type Pool struct {
	ID                    string   `json:"id"`
	DexID                 string   `json:"dex_id,omitempty"`
	DexName               string   `json:"dex_name"`
	Chain                 string   `json:"chain"`
	Tokens                []Token  `json:"tokens"`
	VolumeUSD             *float64 `json:"volume_usd,omitempty"`
	PriceUSD              *float64 `json:"price_usd,omitempty"`
	Fee                   *float64 `json:"fee,omitempty"`
	Transactions          int64    `json:"transactions,omitempty"`
	CreatedAt             string   `json:"created_at,omitempty"`
	CreatedAtBlockNumber  int64    `json:"created_at_block_number,omitempty"`
	LastPriceChangeUSD24h *float64 `json:"last_price_change_usd_24h,omitempty"`
}

// PageInfo is the 0-indexed pagination metadata returned by list endpoints.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type DexesResponse struct {
	Dexes    []Dex    `json:"dexes"`
	PageInfo PageInfo `json:"page_info"`
}

type PoolsResponse struct {
	Pools    []Pool   `json:"pools"`
	PageInfo PageInfo `json:"page_info"`
}

type SearchResponse struct {
	Tokens []Token `json:"tokens"`
	Pools  []Pool  `json:"pools"`
	Dexes  []Dex   `json:"dexes"`
}

type Stats struct {
	Networks int `json:"networks"`
	Dexes    int `json:"dexes"`
	Pools    int `json:"pools"`
	Tokens   int `json:"tokens"`
}

// Envelope is the output shape of every operation. FormattedResponse is a
// lossy display projection; RawData is the upstream body byte-for-byte.
type Envelope struct {
	FormattedResponse any             `json:"formatted_response"`
	RawData           json.RawMessage `json:"raw_data"`
}
