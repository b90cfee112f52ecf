package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/riverfjs/quickpopup-go/internal/types"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name string
		vp   types.Viewport
		want float64
	}{
		{"small", types.Viewport{Width: 1024, Height: 768}, 1},
		{"exact", types.Viewport{Width: 1600, Height: 900}, 1},
		{"wide", types.Viewport{Width: 3200, Height: 1800}, 0.5},
		{"tall", types.Viewport{Width: 800, Height: 6400}, 0.25},
		{"empty", types.Viewport{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scale(tt.vp); got != tt.want {
				t.Errorf("Scale() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRender 测试预览尺寸与弹窗填充色
func TestRender(t *testing.T) {
	vp := types.Viewport{Width: 3200, Height: 1800}
	sel := types.Rect{Top: 300, Left: 400, Width: 100, Height: 30}
	popup := types.Rect{Width: 200, Height: 100}
	p := types.Placement{Top: 346, Left: 350, Orientation: types.Below}

	img := Render(vp, sel, popup, p, *types.DefaultPopupConfig())
	if got := img.Bounds().Dx(); got != 1600 {
		t.Errorf("width = %d, want 1600", got)
	}
	if got := img.Bounds().Dy(); got != 900 {
		t.Errorf("height = %d, want 900", got)
	}

	// bottom-right interior of the popup, away from the label
	if got := img.RGBAAt(270, 210); got != popupFill {
		t.Errorf("popup pixel = %v, want %v", got, popupFill)
	}
	if got := img.RGBAAt(1, 1); got != background {
		t.Errorf("corner pixel = %v, want %v", got, background)
	}
}

func TestEncode(t *testing.T) {
	vp := types.Viewport{Width: 320, Height: 240}
	img := Render(vp, types.Rect{Top: 20, Left: 20, Width: 40, Height: 10}, types.Rect{Width: 80, Height: 40},
		types.Placement{Top: 46, Left: 10, Orientation: types.Below}, *types.DefaultPopupConfig())

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
