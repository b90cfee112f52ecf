package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	quickpopup "github.com/riverfjs/quickpopup-go"
)

type splitOptions struct {
	markdown bool
	trace    bool
	cfg      quickpopup.SplitConfig
}

func newSplitCmd() *cobra.Command {
	opts := &splitOptions{cfg: *quickpopup.DefaultSplitConfig()}
	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split text into paragraphs separated by blank lines",
		Long: `Split text read from file (or stdin) into paragraphs.

Thresholds come from flags, then QUICKPOPUP_* environment variables, then defaults.
With --markdown only top-level paragraphs are split; headings, lists, quotes,
tables and code blocks are copied unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.markdown, "markdown", "m", false, "treat input as Markdown")
	f.BoolVar(&opts.trace, "trace", false, "print the rule and length of each paragraph to stderr")
	f.IntVar(&opts.cfg.SoftLimit, "soft-limit", opts.cfg.SoftLimit, "length kept as one paragraph, env "+envSoftLimit)
	f.IntVar(&opts.cfg.MinPeriods, "min-periods", opts.cfg.MinPeriods, "periods needed for period-count splitting, env "+envMinPeriods)
	f.IntVar(&opts.cfg.SearchStart, "search-start", opts.cfg.SearchStart, "start of the delimiter search window, env "+envSearchStart)
	f.IntVar(&opts.cfg.SearchEnd, "search-end", opts.cfg.SearchEnd, "end of the delimiter search window, env "+envSearchEnd)
	f.IntVar(&opts.cfg.HardLimit, "hard-limit", opts.cfg.HardLimit, "length of a cut without delimiter, env "+envHardLimit)
	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *splitOptions) error {
	if opts.markdown && opts.trace {
		return fmt.Errorf("--trace cannot be combined with --markdown")
	}
	if err := applyEnvThresholds(cmd, &opts.cfg); err != nil {
		return err
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	withCfg := quickpopup.WithSplitConfig(&opts.cfg)
	out := cmd.OutOrStdout()
	if opts.markdown {
		_, err = io.WriteString(out, quickpopup.SplitMarkdown(text, withCfg))
		return err
	}

	if opts.trace {
		errOut := cmd.ErrOrStderr()
		for i, p := range quickpopup.Paragraphs(text, withCfg) {
			fmt.Fprintf(errOut, "#%d %s runes=%d utf16=%d\n",
				i+1, p.Rule, quickpopup.CountText(p.Text), quickpopup.UTF16Len(p.Text))
		}
	}
	_, err = fmt.Fprintln(out, quickpopup.Split(text, withCfg))
	return err
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
