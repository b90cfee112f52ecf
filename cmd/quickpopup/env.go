package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	quickpopup "github.com/riverfjs/quickpopup-go"
)

const (
	envSoftLimit   = "QUICKPOPUP_SOFT_LIMIT"
	envMinPeriods  = "QUICKPOPUP_MIN_PERIODS"
	envSearchStart = "QUICKPOPUP_SEARCH_START"
	envSearchEnd   = "QUICKPOPUP_SEARCH_END"
	envHardLimit   = "QUICKPOPUP_HARD_LIMIT"
	envLogLevel    = "QUICKPOPUP_LOG_LEVEL"
)

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is only an error when the
// path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

type threshold struct {
	flag string
	env  string
	dst  *int
}

func thresholds(cfg *quickpopup.SplitConfig) []threshold {
	return []threshold{
		{"soft-limit", envSoftLimit, &cfg.SoftLimit},
		{"min-periods", envMinPeriods, &cfg.MinPeriods},
		{"search-start", envSearchStart, &cfg.SearchStart},
		{"search-end", envSearchEnd, &cfg.SearchEnd},
		{"hard-limit", envHardLimit, &cfg.HardLimit},
	}
}

// applyEnvThresholds overrides every threshold whose flag was not set on the
// command line with its environment variable, if present.
func applyEnvThresholds(cmd *cobra.Command, cfg *quickpopup.SplitConfig) error {
	for _, th := range thresholds(cfg) {
		if cmd.Flags().Changed(th.flag) {
			continue
		}
		v, ok := os.LookupEnv(th.env)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", th.env, err)
		}
		*th.dst = n
	}
	return nil
}
