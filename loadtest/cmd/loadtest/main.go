// Package main is the entry point of the load-generation driver.
package main

import (
	"fmt"
	"os"

	"github.com/InternetUnexplorer/CSCI-389-HW6/loadtest/attacker"
	"github.com/InternetUnexplorer/CSCI-389-HW6/loadtest/config"
	"github.com/InternetUnexplorer/CSCI-389-HW6/loadtest/scenario"
)

func main() {
	cfg := config.Load()

	fmt.Printf("[INFO] base-url=%s rate=%d duration=%s keys=%d get:set:del=%d:%d:%d val-size-dist=%.3f\n",
		cfg.BaseURL, cfg.Rate, cfg.Duration, cfg.Keys, cfg.ProbGet, cfg.ProbSet, cfg.ProbDel, cfg.ValSizeDist)

	gen := scenario.NewGenerator(
		cfg.BaseURL,
		cfg.Keys,
		cfg.ProbGet,
		cfg.ProbSet,
		cfg.ProbDel,
		cfg.ValSizeDist,
	)

	r := attacker.Runner{
		Rate:     cfg.Rate,
		Duration: cfg.Duration,
		Timeout:  cfg.Timeout,
		Name:     cfg.Name,
		Output:   cfg.Output,
	}

	if _, err := r.Run(gen.Targeter()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
