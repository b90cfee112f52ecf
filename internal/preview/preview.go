// Package preview draws a placement as a PNG so thresholds can be checked by eye.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/riverfjs/quickpopup-go/internal/types"
)

// MaxEdge is the longest edge of a rendered preview in pixels.
const MaxEdge = 1600

var (
	background = color.RGBA{0xfa, 0xfa, 0xfa, 0xff}
	marginLine = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	selection  = color.RGBA{0x4a, 0x90, 0xe2, 0xff}
	popupFill  = color.RGBA{0xff, 0xf4, 0xd6, 0xff}
	popupEdge  = color.RGBA{0xe0, 0x8e, 0x0b, 0xff}
	labelColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

// Scale returns the factor applied to viewport coordinates.
func Scale(vp types.Viewport) float64 {
	longest := math.Max(vp.Width, vp.Height)
	if longest <= MaxEdge || longest <= 0 {
		return 1
	}
	return MaxEdge / longest
}

// Render draws the viewport, its screen margin, the selection, the popup and
// its tail marker.
func Render(vp types.Viewport, sel, popup types.Rect, p types.Placement, cfg types.PopupConfig) *image.RGBA {
	s := Scale(vp)
	w := max(1, int(math.Round(vp.Width*s)))
	h := max(1, int(math.Round(vp.Height*s)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	m := cfg.ScreenMargin
	strokeRect(img, scaleRect(types.Rect{Top: m, Left: m, Width: vp.Width - 2*m, Height: vp.Height - 2*m}, s), marginLine)

	selRect := scaleRect(sel, s)
	strokeRect(img, selRect, selection)

	popRect := scaleRect(p.Rect(popup.Width, popup.Height), s)
	draw.Draw(img, popRect, &image.Uniform{popupFill}, image.Point{}, draw.Src)
	strokeRect(img, popRect, popupEdge)

	drawTail(img, p, popup, cfg, s)

	label := fmt.Sprintf("%s top=%.0f left=%.0f", p.Orientation, p.Top, p.Left)
	drawLabel(img, popRect, label)
	return img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

func scaleRect(r types.Rect, s float64) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left*s)),
		int(math.Round(r.Top*s)),
		int(math.Round(r.Right()*s)),
		int(math.Round(r.Bottom()*s)),
	)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawTail marks the tail as a small block centered on the popup edge that
// faces the selection.
func drawTail(img *image.RGBA, p types.Placement, popup types.Rect, cfg types.PopupConfig, s float64) {
	size := cfg.TailSize
	cx := p.Left + popup.Width/2
	top := p.Top - size
	if p.Orientation == types.Above {
		top = p.Top + popup.Height
	}
	tail := scaleRect(types.Rect{Top: top, Left: cx - size, Width: 2 * size, Height: size}, s)
	draw.Draw(img, tail.Intersect(img.Bounds()), &image.Uniform{popupEdge}, image.Point{}, draw.Src)
}

func drawLabel(img *image.RGBA, box image.Rectangle, label string) {
	face := basicfont.Face7x13
	x := box.Min.X + 4
	y := box.Min.Y + face.Ascent + 4
	if y > img.Bounds().Max.Y {
		y = img.Bounds().Max.Y - face.Descent
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{labelColor},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
