package attacker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// ResultSummary condenses one run. Misses show up as 404s in
// StatusCodes and drag Success down; that is expected for a cache
// workload with deletes.
type ResultSummary struct {
	Requests    uint64                `json:"requests"`
	Rate        float64               `json:"rate_req_per_sec"`
	Success     float64               `json:"success_ratio"`
	Throughput  float64               `json:"throughput_bytes_per_sec"`
	Latencies   vegeta.LatencyMetrics `json:"latencies"`
	StatusCodes map[string]int        `json:"status_codes"`
	Errors      []string              `json:"errors"`
	Duration    time.Duration         `json:"duration"`
}

// Runner drives one load test.
type Runner struct {
	Rate     int
	Duration time.Duration
	Timeout  time.Duration
	Name     string
	Output   string
}

// Run attacks with the given targeter, writes raw results to
// r.Output, and prints a JSON summary.
func (r *Runner) Run(targeter vegeta.Targeter) (*ResultSummary, error) {
	rate := vegeta.Rate{Freq: r.Rate, Per: time.Second}
	att := vegeta.NewAttacker(vegeta.Timeout(r.Timeout), vegeta.KeepAlive(true))

	results := att.Attack(targeter, rate, r.Duration, r.Name)

	var buf bytes.Buffer
	enc := vegeta.NewEncoder(&buf)

	var metrics vegeta.Metrics
	for res := range results {
		metrics.Add(res)
		if err := enc.Encode(res); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
	}
	metrics.Close()

	if err := os.WriteFile(r.Output, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write results: %w", err)
	}

	summary := &ResultSummary{
		Requests:    metrics.Requests,
		Rate:        metrics.Rate,
		Success:     metrics.Success,
		Throughput:  metrics.Throughput,
		Latencies:   metrics.Latencies,
		StatusCodes: metrics.StatusCodes,
		Errors:      metrics.Errors,
		Duration:    metrics.Duration,
	}

	out, _ := json.MarshalIndent(summary, "", " ")
	fmt.Printf("\n=== Summary(JSON) ===\n%s\n", string(out))

	return summary, nil
}
