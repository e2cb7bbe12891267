package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cryptotracker/internal/httpx"
	"github.com/shopspring/decimal"
)

// Defaults for the /coins/markets query.
const (
	DefaultVsCurrency = "usd"
	DefaultOrder      = "market_cap_desc"
)

// Market is one element of the /coins/markets response.
type Market struct {
	ID                       string              `json:"id"`
	Symbol                   string              `json:"symbol"`
	Name                     string              `json:"name"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	MarketCap                decimal.NullDecimal `json:"market_cap"`
	TotalVolume              decimal.NullDecimal `json:"total_volume"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
	LastUpdated              *time.Time          `json:"last_updated"`
}

// MarketsParams are the query parameters of /coins/markets. Zero values are
// replaced by the defaults: usd, market_cap_desc, one result on page one.
type MarketsParams struct {
	VsCurrency string
	IDs        []string
	Order      string
	PerPage    int
	Page       int
	Sparkline  bool
}

func (p MarketsParams) withDefaults() MarketsParams {
	if p.VsCurrency == "" {
		p.VsCurrency = DefaultVsCurrency
	}
	if p.Order == "" {
		p.Order = DefaultOrder
	}
	if p.PerPage <= 0 {
		p.PerPage = 1
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p
}

type requestIDKey struct{}

// ContextWithRequestID attaches a request id that is sent as X-Request-Id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetCoinMarkets retrieves market data for the requested coins.
func (c *CoinGeckoAPIClient) GetCoinMarkets(ctx context.Context, params MarketsParams, opts ...Option) ([]Market, error) {
	var override = &CoinGeckoAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	params = params.withDefaults()
	query := maps.Clone(override.query)
	query.Set("vs_currency", params.VsCurrency)
	query.Set("ids", strings.Join(params.IDs, ","))
	query.Set("order", params.Order)
	query.Set("per_page", strconv.Itoa(params.PerPage))
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("sparkline", strconv.FormatBool(params.Sparkline))

	url := fmt.Sprintf("%s/coins/markets?%s", strings.TrimRight(override.baseURL, "/"), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &RequestError{Op: "creating request", Err: err}
	}
	req.Header = override.header
	req.Header.Set("Accept", "application/json")
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Op: "performing request", Err: httpx.RedactError(err)}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return nil, &StatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var markets []Market
	if err := json.NewDecoder(res.Body).Decode(&markets); err != nil {
		return nil, fmt.Errorf("decoding markets response: %w", err)
	}
	return markets, nil
}

// GetCoinMarket retrieves the top market entry for a single coin id.
func (c *CoinGeckoAPIClient) GetCoinMarket(ctx context.Context, id string) (Market, error) {
	markets, err := c.GetCoinMarkets(ctx, MarketsParams{IDs: []string{id}, PerPage: 1, Page: 1})
	if err != nil {
		return Market{}, err
	}
	if len(markets) == 0 {
		return Market{}, ErrNotFound
	}
	return markets[0], nil
}
