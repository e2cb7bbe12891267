package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cryptotracker/internal/coingecko"
	"cryptotracker/internal/config"
	"cryptotracker/internal/console"
	"cryptotracker/internal/httpx"
	"cryptotracker/internal/logger"
	"cryptotracker/internal/tracker"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log := logger.New()
		log.Fatal().Err(err).Msg("tracker failed")
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath string
		idsCSV     string
		once       bool
		baseURL    string
		timeout    int
	)
	fs.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json or config.yaml (optional)")
	fs.StringVar(&idsCSV, "ids", "", "comma-separated coin ids to fetch once, skipping the menu")
	fs.BoolVar(&once, "once", false, "fetch tracker.default_ids once and exit")
	fs.StringVar(&baseURL, "base-url", "", "override the CoinGecko API base URL")
	fs.IntVar(&timeout, "timeout", -1, "request timeout seconds (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if baseURL != "" { cfg.CoinGecko.BaseURL = baseURL }
	if timeout >= 0 { cfg.HTTP.RequestTimeoutSec = timeout }

	log := logger.NewWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Pretty:     cfg.Log.Pretty,
		TimeFormat: cfg.Log.TimeFormat,
		Out:        stderr,
	})

	httpClient := httpx.New(time.Duration(cfg.HTTP.RequestTimeoutSec) * time.Second)
	httpClient.UserAgent = cfg.CoinGecko.UserAgent
	httpClient.Log = log

	client, err := coingecko.NewCoinGeckoAPIClient(
		cfg.CoinGecko.APIKey,
		coingecko.WithHTTPClient(httpClient),
		coingecko.WithBaseURL(cfg.CoinGecko.BaseURL),
	)
	if err != nil {
		return fmt.Errorf("coingecko client: %w", err)
	}
	log.Debug().Str("base_url", client.BaseURL()).Int("timeout_sec", cfg.HTTP.RequestTimeoutSec).Msg("starting tracker")

	tr := tracker.New(client, stdout, tracker.WithLogger(log))
	ctx := context.Background()

	ids := config.SplitCSV(idsCSV)
	if len(ids) == 0 && once {
		ids = cfg.Tracker.DefaultIDs
		if len(ids) == 0 {
			return fmt.Errorf("-once needs -ids or tracker.default_ids")
		}
	}
	if len(ids) > 0 {
		tr.FetchMany(ctx, ids)
		return nil
	}
	return console.New(tr, stdin, stdout).Run(ctx)
}
