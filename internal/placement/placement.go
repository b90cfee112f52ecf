// Package placement positions the action popup next to a text selection
// without covering it and without leaving the viewport margins.
package placement

import (
	"github.com/riverfjs/quickpopup-go/internal/types"
)

// Result is a placement together with how it was reached.
type Result struct {
	types.Placement
	// Forced is set when the preferred position overlapped the selection and
	// the fallback position was used instead.
	Forced bool
}

// Calculate returns the popup position for the given selection.
func Calculate(selection, popup types.Rect, vp types.Viewport, cfg types.PopupConfig) types.Placement {
	return CalculateDetailed(selection, popup, vp, cfg).Placement
}

// CalculateDetailed is Calculate reporting whether the collision fallback fired.
func CalculateDetailed(selection, popup types.Rect, vp types.Viewport, cfg types.PopupConfig) Result {
	left := horizontal(selection, popup, vp, cfg)
	top, orientation := vertical(selection, popup, vp, cfg)

	p := types.Placement{Top: top, Left: left, Orientation: orientation}
	if p.Rect(popup.Width, popup.Height).Overlaps(selection) {
		return Result{Placement: forceSafe(selection, popup, vp, cfg), Forced: true}
	}
	return Result{Placement: p}
}

// horizontal centers the popup over the selection within the side margins.
func horizontal(selection, popup types.Rect, vp types.Viewport, cfg types.PopupConfig) float64 {
	centered := selection.Left + selection.Width/2 - popup.Width/2
	return clamp(centered, cfg.ScreenMargin, vp.Width-popup.Width-cfg.ScreenMargin)
}

// vertical prefers below, then above, then the side with more room; a tie
// goes above.
func vertical(selection, popup types.Rect, vp types.Viewport, cfg types.PopupConfig) (float64, types.Orientation) {
	gap := cfg.Gap()
	margin := cfg.ScreenMargin

	below := selection.Bottom() + gap
	if below+popup.Height <= vp.Height-margin {
		return below, types.Below
	}

	above := selection.Top - popup.Height - gap
	if above >= margin {
		return above, types.Above
	}

	maxTop := vp.Height - popup.Height - margin
	spaceAbove := selection.Top - margin
	spaceBelow := vp.Height - selection.Bottom() - margin
	if spaceAbove >= spaceBelow {
		return clamp(above, margin, maxTop), types.Above
	}
	return clamp(below, margin, maxTop), types.Below
}

// forceSafe puts the popup above the selection if it fits under the top
// margin, else below it pulled up so its bottom respects the margin.
// A residual overlap is accepted when the viewport is too small for both.
func forceSafe(selection, popup types.Rect, vp types.Viewport, cfg types.PopupConfig) types.Placement {
	margin := cfg.ScreenMargin
	left := horizontal(selection, popup, vp, cfg)

	top := selection.Top - popup.Height - cfg.Gap()
	if top >= margin {
		return types.Placement{Top: top, Left: left, Orientation: types.Above}
	}

	top = selection.Bottom() + cfg.Gap()
	if top+popup.Height > vp.Height-margin {
		top = max(margin, vp.Height-popup.Height-margin)
	}
	return types.Placement{Top: top, Left: left, Orientation: types.Below}
}

// clamp limits v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
