package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cryptotracker/internal/coingecko"
	"cryptotracker/internal/format"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NoDataMessage is printed by Display before any successful fetch.
const NoDataMessage = "No data to display. Please fetch data first."

// MarketClient looks up the market entry for one coin id.
//
//go:generate mockgen -package=tracker_test -destination=mock_market_client_test.go -source=tracker.go MarketClient
type MarketClient interface {
	GetCoinMarket(ctx context.Context, id string) (coingecko.Market, error)
}

// Tracker fetches quotes one at a time and keeps the most recent success.
type Tracker struct {
	client MarketClient
	out    io.Writer
	log    zerolog.Logger

	current *coingecko.Market
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New returns a Tracker that prints to out.
func New(client MarketClient, out io.Writer, opts ...Option) *Tracker {
	t := &Tracker{client: client, out: out, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Quote returns the stored quote, if any.
func (t *Tracker) Quote() (coingecko.Market, bool) {
	if t.current == nil {
		return coingecko.Market{}, false
	}
	return *t.current, true
}

// Fetch looks up id and stores the result as the current quote. Failures are
// reported on the output writer and never returned; the stored quote is only
// replaced on success.
func (t *Tracker) Fetch(ctx context.Context, id string) {
	// An empty ids parameter makes the API return the top coin instead of nothing.
	if strings.TrimSpace(id) == "" {
		t.report(coingecko.ErrNotFound)
		return
	}

	requestID := uuid.NewString()
	log := t.log.With().Str("request_id", requestID).Str("id", id).Logger()

	start := time.Now()
	m, err := t.client.GetCoinMarket(coingecko.ContextWithRequestID(ctx, requestID), id)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("fetch failed")
		t.report(err)
		return
	}
	t.current = &m
	log.Debug().Str("name", m.Name).Dur("elapsed", time.Since(start)).Msg("fetched quote")
}

func (t *Tracker) report(err error) {
	var (
		statusErr *coingecko.StatusError
		reqErr    *coingecko.RequestError
	)
	switch {
	case errors.Is(err, coingecko.ErrNotFound):
		fmt.Fprintln(t.out, "ValueError: Cryptocurrency not found.")
	case errors.As(err, &statusErr):
		fmt.Fprintf(t.out, "ValueError: Error fetching data: %d\n", statusErr.StatusCode)
	case errors.As(err, &reqErr):
		fmt.Fprintln(t.out, "An error occurred with the API request:", reqErr.Err)
	default:
		fmt.Fprintln(t.out, "An unexpected error occurred:", err)
	}
}

// Display prints the stored quote, or NoDataMessage when there is none.
func (t *Tracker) Display() {
	if t.current == nil {
		fmt.Fprintln(t.out, NoDataMessage)
		return
	}
	m := t.current
	fmt.Fprintf(t.out, "\nName: %s\n", m.Name)
	fmt.Fprintf(t.out, "Current Price: %s\n", format.NullUSD(m.CurrentPrice))
	fmt.Fprintf(t.out, "Market Cap: %s\n", format.NullGroupedUSD(m.MarketCap))
	fmt.Fprintf(t.out, "24h Volume: %s\n", format.NullGroupedUSD(m.TotalVolume))
	fmt.Fprintf(t.out, "Price Change (24h): %s\n", format.NullPercent(m.PriceChangePercentage24h))
}

// FetchMany fetches and displays each id in order. A failure for one id does
// not stop the rest.
func (t *Tracker) FetchMany(ctx context.Context, ids []string) {
	for _, id := range ids {
		fmt.Fprintf(t.out, "\nFetching data for: %s\n", id)
		t.Fetch(ctx, id)
		t.Display()
	}
}
