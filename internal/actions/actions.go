package actions

import (
	"context"

	"github.com/donbagger/plugin-dexpaprika/internal/dexpaprika"
	"github.com/donbagger/plugin-dexpaprika/internal/model"
)

func pageProperty() Property {
	return Property{
		Name:        "page",
		Type:        "number",
		Description: "Page number for pagination (0-indexed)",
		Default:     dexpaprika.DefaultPage,
	}
}

func limitProperty() Property {
	return Property{
		Name:        "limit",
		Type:        "number",
		Description: "Number of items per page",
		Default:     dexpaprika.DefaultLimit,
	}
}

func orderByProperty() Property {
	return Property{
		Name:        "orderBy",
		Type:        "string",
		Description: "Field to order pools by",
		Enum:        dexpaprika.OrderByValues,
		Default:     dexpaprika.DefaultOrderBy,
	}
}

func sortProperty() Property {
	return Property{
		Name:        "sort",
		Type:        "string",
		Description: "Sort direction",
		Enum:        dexpaprika.SortValues,
		Default:     dexpaprika.DefaultSort,
	}
}

func networkProperty() Property {
	return Property{
		Name:        "network",
		Type:        "string",
		Description: "Network id, e.g. 'ethereum' or 'solana'",
	}
}

func listQuery(params map[string]any) dexpaprika.ListQuery {
	return dexpaprika.ListQuery{
		Page:    intParam(params, "page", dexpaprika.DefaultPage),
		Limit:   intParam(params, "limit", dexpaprika.DefaultLimit),
		OrderBy: stringParam(params, "orderBy", dexpaprika.DefaultOrderBy),
		Sort:    stringParam(params, "sort", dexpaprika.DefaultSort),
	}
}

// NewRegistry registers the full action set backed by one shared client.
func NewRegistry(client *dexpaprika.Client) *Registry {
	r := &Registry{}

	r.register(Action{
		Name:        "getNetworks",
		Description: "Get a list of all blockchain networks supported by DexPaprika",
		Similes:     []string{"LIST_NETWORKS", "SHOW_NETWORKS", "SUPPORTED_CHAINS"},
		Schema:      Schema{},
		Handler: func(ctx context.Context, _ map[string]any) (model.Envelope, error) {
			return client.GetNetworks(ctx)
		},
	})

	r.register(Action{
		Name:        "getNetworkDexes",
		Description: "Get the decentralized exchanges available on a specific network",
		Similes:     []string{"LIST_DEXES", "SHOW_EXCHANGES", "NETWORK_DEXES"},
		Schema: Schema{
			Properties: []Property{networkProperty(), pageProperty(), limitProperty()},
			Required:   []string{"network"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			network, err := requiredString(params, "network")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.GetNetworkDexes(ctx, network, listQuery(params))
		},
	})

	r.register(Action{
		Name:        "getTopPools",
		Description: "Get the top liquidity pools across all supported networks",
		Similes:     []string{"TOP_POOLS", "BEST_POOLS", "POOLS_OVERVIEW"},
		Schema: Schema{
			Properties: []Property{pageProperty(), limitProperty(), orderByProperty(), sortProperty()},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			return client.GetTopPools(ctx, listQuery(params))
		},
	})

	r.register(Action{
		Name:        "getNetworkPools",
		Description: "Get the top liquidity pools on a specific network",
		Similes:     []string{"NETWORK_POOLS", "POOLS_ON_CHAIN"},
		Schema: Schema{
			Properties: []Property{networkProperty(), pageProperty(), limitProperty(), orderByProperty(), sortProperty()},
			Required:   []string{"network"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			network, err := requiredString(params, "network")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.GetNetworkPools(ctx, network, listQuery(params))
		},
	})

	r.register(Action{
		Name:        "getDexPools",
		Description: "Get the top liquidity pools on a specific DEX of a network",
		Similes:     []string{"DEX_POOLS", "EXCHANGE_POOLS"},
		Schema: Schema{
			Properties: []Property{
				networkProperty(),
				{Name: "dex", Type: "string", Description: "DEX id on the network, e.g. 'uniswap_v3'"},
				pageProperty(), limitProperty(), orderByProperty(), sortProperty(),
			},
			Required: []string{"network", "dex"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			network, err := requiredString(params, "network")
			if err != nil {
				return model.Envelope{}, err
			}
			dex, err := requiredString(params, "dex")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.GetDexPools(ctx, network, dex, listQuery(params))
		},
	})

	r.register(Action{
		Name:        "getPoolDetails",
		Description: "Get detailed information about a specific liquidity pool",
		Similes:     []string{"POOL_DETAILS", "POOL_INFO"},
		Schema: Schema{
			Properties: []Property{
				networkProperty(),
				{Name: "poolAddress", Type: "string", Description: "On-chain address of the pool"},
				{Name: "inversed", Type: "boolean", Description: "Invert the price quote direction", Default: false},
			},
			Required: []string{"network", "poolAddress"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			network, err := requiredString(params, "network")
			if err != nil {
				return model.Envelope{}, err
			}
			poolAddress, err := requiredString(params, "poolAddress")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.GetPoolDetails(ctx, network, poolAddress, boolParam(params, "inversed", false))
		},
	})

	r.register(Action{
		Name:        "getTokenDetails",
		Description: "Get detailed information about a specific token on a network",
		Similes:     []string{"TOKEN_DETAILS", "TOKEN_INFO"},
		Schema: Schema{
			Properties: []Property{
				networkProperty(),
				{Name: "tokenAddress", Type: "string", Description: "On-chain address of the token"},
			},
			Required: []string{"network", "tokenAddress"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			network, err := requiredString(params, "network")
			if err != nil {
				return model.Envelope{}, err
			}
			tokenAddress, err := requiredString(params, "tokenAddress")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.GetTokenDetails(ctx, network, tokenAddress)
		},
	})

	r.register(Action{
		Name:        "search",
		Description: "Search tokens, pools and DEXes by name or id",
		Similes:     []string{"SEARCH_DEFI", "FIND_TOKEN", "FIND_POOL"},
		Schema: Schema{
			Properties: []Property{
				{Name: "query", Type: "string", Description: "Search term, at least 3 characters"},
			},
			Required: []string{"query"},
		},
		Handler: func(ctx context.Context, params map[string]any) (model.Envelope, error) {
			query, err := requiredString(params, "query")
			if err != nil {
				return model.Envelope{}, err
			}
			return client.Search(ctx, query)
		},
	})

	r.register(Action{
		Name:        "getStats",
		Description: "Get DexPaprika ecosystem statistics: network, DEX, pool and token counts",
		Similes:     []string{"ECOSYSTEM_STATS", "DEXPAPRIKA_STATS"},
		Schema:      Schema{},
		Handler: func(ctx context.Context, _ map[string]any) (model.Envelope, error) {
			return client.GetStats(ctx)
		},
	})

	return r
}
