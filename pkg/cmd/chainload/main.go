// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

// chainload drives a weighted random mix of list operations through a pool
// of workers and reports throughput and per-op latency.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func makeChainloadCommand() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "chainload",
		Short: "chainload runs a randomized list workload and reports per-op latencies.",
		Long: `chainload spawns a pool of workers that each own a private list and apply a
weighted random mix of operations to it. Latencies are recorded per op kind
and merged into a final report.

Typical usage:
    chainload --ops=2000000 --workers=8
        Run two million operations over eight workers with the default mix.

    chainload --profile=mix.yaml
        Load the op mix and the initial list size from a YAML profile.
`,
		Args:          cobra.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.workers, "workers", cfg.workers, "number of workers, each owning a private list")
	cmd.Flags().Int64Var(&cfg.ops, "ops", cfg.ops, "total operations to run across all workers")
	cmd.Flags().Int64Var(&cfg.seed, "seed", cfg.seed, "rng seed; 0 derives one from the current time")
	cmd.Flags().StringVar(&cfg.mix, "mix", cfg.mix, "comma separated op=weight pairs")
	cmd.Flags().StringVar(&cfg.profile, "profile", cfg.profile, "YAML profile with the op mix; overrides --mix")
	cmd.Flags().IntVar(&cfg.initial, "initial", cfg.initial, "values preloaded into every worker's list")
	cmd.Flags().IntVar(&cfg.maxLen, "max-len", cfg.maxLen, "per-list length cap; growth ops become pops beyond it (0 disables)")
	cmd.Flags().DurationVar(&cfg.interval, "interval", cfg.interval, "progress reporting interval")
	return cmd
}

func main() {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-signalCh
		log.Printf("signal received: %v", s)
		os.Exit(1)
	}()

	cmd := makeChainloadCommand()
	if err := cmd.Execute(); err != nil {
		log.Printf("ERROR: %+v", err)
		os.Exit(1)
	}
}
