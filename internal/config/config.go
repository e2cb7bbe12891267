package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type CoinGecko struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	APIKey    string `json:"api_key" yaml:"api_key"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

type HTTP struct {
	// RequestTimeoutSec of 0 leaves requests unbounded.
	RequestTimeoutSec int `json:"request_timeout_sec" yaml:"request_timeout_sec"`
}

type Log struct {
	Level      string `json:"level" yaml:"level"`
	Pretty     bool   `json:"pretty" yaml:"pretty"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

type Tracker struct {
	DefaultIDs []string `json:"default_ids" yaml:"default_ids"`
}

type Config struct {
	CoinGecko CoinGecko `json:"coingecko" yaml:"coingecko"`
	HTTP      HTTP      `json:"http" yaml:"http"`
	Log       Log       `json:"log" yaml:"log"`
	Tracker   Tracker   `json:"tracker" yaml:"tracker"`
}

func Default() Config {
	return Config{
		CoinGecko: CoinGecko{
			BaseURL:   "https://api.coingecko.com/api/v3",
			UserAgent: "cryptotracker/1.0",
		},
		Log: Log{Level: "warn"},
	}
}

// candidates are probed in the working directory when no path is given.
var candidates = []string{"config.json", "config.yaml", "config.yml"}

// Load reads config from path, which may be JSON or YAML by extension. If path
// is empty the first existing candidate file is used; if none exists, defaults
// apply. A .env file in the working directory is loaded when present and
// environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if path == "" {
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	default:
		return json.Unmarshal(b, cfg)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" { cfg.CoinGecko.BaseURL = v }
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" { cfg.CoinGecko.APIKey = v }
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.HTTP.RequestTimeoutSec = x }
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" { cfg.Log.Level = v }
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y": cfg.Log.Pretty = true
		case "0", "false", "no", "n": cfg.Log.Pretty = false
		}
	}
	if v := os.Getenv("TRACKER_IDS"); v != "" { cfg.Tracker.DefaultIDs = SplitCSV(v) }
}

// SplitCSV splits s on commas and drops blank entries.
func SplitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" { out = append(out, p) }
	}
	return out
}
