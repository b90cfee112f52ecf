package quickpopup

import (
	"go.uber.org/zap"
)

// Options holds options for splitting and placement.
type Options struct {
	SplitConfig *SplitConfig
	PopupConfig *PopupConfig
	Logger      *zap.Logger
}

// Option is a function that configures Options.
type Option func(*Options)

// WithSplitConfig sets custom splitting thresholds. An invalid config is
// replaced by the defaults and a warning is logged.
func WithSplitConfig(config *SplitConfig) Option {
	return func(opts *Options) {
		opts.SplitConfig = config
	}
}

// WithPopupConfig sets custom popup spacing.
func WithPopupConfig(config *PopupConfig) Option {
	return func(opts *Options) {
		opts.PopupConfig = config
	}
}

// WithLogger sets the logger for a single call instead of the package Logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		SplitConfig: DefaultSplitConfig(),
		PopupConfig: DefaultPopupConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.SplitConfig == nil {
		options.SplitConfig = DefaultSplitConfig()
	}
	if options.PopupConfig == nil {
		options.PopupConfig = DefaultPopupConfig()
	}
	return options
}

func (o *Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger
}

// splitConfig returns the thresholds to split with, falling back to the
// defaults when the configured ones are inconsistent.
func (o *Options) splitConfig() SplitConfig {
	cfg := *o.SplitConfig
	if err := cfg.Validate(); err != nil {
		o.logger().Warn("invalid split config, using defaults", zap.Error(err))
		return *DefaultSplitConfig()
	}
	return cfg
}
