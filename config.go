package quickpopup

import (
	"sync"

	"github.com/riverfjs/quickpopup-go/internal/splitter"
	"github.com/riverfjs/quickpopup-go/internal/types"
)

// 导出类型别名
type SplitConfig = splitter.Config
type PopupConfig = types.PopupConfig
type Rect = types.Rect
type Viewport = types.Viewport
type Placement = types.Placement
type Orientation = types.Orientation

const (
	Below = types.Below
	Above = types.Above
)

// ErrInvalidConfig is wrapped by SplitConfig.Validate errors.
var ErrInvalidConfig = splitter.ErrInvalidConfig

var (
	defaultSplitConfig     *SplitConfig
	defaultSplitConfigOnce sync.Once

	defaultPopupConfig     *PopupConfig
	defaultPopupConfigOnce sync.Once
)

// DefaultSplitConfig returns the default splitting thresholds (singleton).
func DefaultSplitConfig() *SplitConfig {
	defaultSplitConfigOnce.Do(func() {
		cfg := splitter.DefaultConfig()
		defaultSplitConfig = &cfg
	})
	return defaultSplitConfig
}

// DefaultPopupConfig returns the default popup spacing (singleton).
func DefaultPopupConfig() *PopupConfig {
	defaultPopupConfigOnce.Do(func() {
		defaultPopupConfig = types.DefaultPopupConfig()
	})
	return defaultPopupConfig
}
