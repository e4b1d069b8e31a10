package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config describes one load-test run. Defaults roughly mimic the ETC
// workload: reads dominate, deletes are rare, value sizes follow a
// geometric distribution.
type Config struct {
	BaseURL     string
	Keys        int
	ProbGet     int
	ProbSet     int
	ProbDel     int
	ValSizeDist float64
	Rate        int
	Duration    time.Duration
	Timeout     time.Duration
	Name        string
	Output      string
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load parses flags with environment fallbacks.
func Load() *Config {
	var c Config

	defaultBase := envOr("LT_BASE_URL", "http://localhost:4022")
	defaultKeys := parseIntEnv("LT_KEYS", 1000)
	defaultGet := parseIntEnv("LT_PROB_GET", 15)
	defaultSet := parseIntEnv("LT_PROB_SET", 8)
	defaultDel := parseIntEnv("LT_PROB_DEL", 1)
	defaultDist := parseFloatEnv("LT_VAL_SIZE_DIST", 0.08)
	defaultRate := parseIntEnv("LT_RATE", 100)
	defaultDuration := envOr("LT_DURATION", "30s")
	defaultTimeout := envOr("LT_TIMEOUT", "5s")
	defaultName := envOr("LT_NAME", "etc-mix")
	defaultOutput := envOr("LT_OUTPUT", "vegeta_results.bin")

	dur, _ := time.ParseDuration(defaultDuration)
	to, _ := time.ParseDuration(defaultTimeout)

	flag.StringVar(&c.BaseURL, "base-url", defaultBase, "Base URL of the cache server")
	flag.IntVar(&c.Keys, "keys", defaultKeys, "Number of keys to choose between")
	flag.IntVar(&c.ProbGet, "prob-get", defaultGet, "Relative weight of GET requests")
	flag.IntVar(&c.ProbSet, "prob-set", defaultSet, "Relative weight of PUT requests")
	flag.IntVar(&c.ProbDel, "prob-del", defaultDel, "Relative weight of DELETE requests")
	flag.Float64Var(&c.ValSizeDist, "val-size-dist", defaultDist, "Geometric distribution parameter for value sizes")
	flag.IntVar(&c.Rate, "rate", defaultRate, "Requests per second")
	flag.DurationVar(&c.Duration, "duration", dur, "Duration of the load test")
	flag.DurationVar(&c.Timeout, "timeout", to, "Request timeout")
	flag.StringVar(&c.Name, "name", defaultName, "Name of the load test")
	flag.StringVar(&c.Output, "output", defaultOutput, "File for raw vegeta results")

	flag.Parse()
	return &c
}
