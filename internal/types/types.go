package types

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Overlaps reports whether the closed vertical and horizontal ranges of r and
// other both intersect. Touching edges count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	vertical := !(r.Bottom() < other.Top || r.Top > other.Bottom())
	horizontal := !(r.Right() < other.Left || r.Left > other.Right())
	return vertical && horizontal
}

// Viewport is the visible area the popup must stay inside.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Orientation tells on which side of the selection the popup sits.
type Orientation int

const (
	// Below places the popup under the selection.
	Below Orientation = iota
	// Above places the popup over the selection.
	Above
)

// String returns the string representation of Orientation.
func (o Orientation) String() string {
	switch o {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Placement is the computed popup position.
type Placement struct {
	Top         float64     `json:"top"`
	Left        float64     `json:"left"`
	Orientation Orientation `json:"orientation"`
}

// Rect returns the box the popup occupies at this placement.
func (p Placement) Rect(popupWidth, popupHeight float64) Rect {
	return Rect{Top: p.Top, Left: p.Left, Width: popupWidth, Height: popupHeight}
}

// PopupConfig holds the fixed spacing of the popup in pixels.
type PopupConfig struct {
	// TailSize is the height of the arrow pointing at the selection.
	TailSize float64
	// PopupMargin is the space between the tail and the selection.
	PopupMargin float64
	// ScreenMargin is kept free on every viewport edge.
	ScreenMargin float64
}

// DefaultPopupConfig returns the default popup spacing.
func DefaultPopupConfig() *PopupConfig {
	return &PopupConfig{
		TailSize:     6,
		PopupMargin:  10,
		ScreenMargin: 10,
	}
}

// Gap returns the vertical distance between selection and popup.
func (c PopupConfig) Gap() float64 {
	return c.TailSize + c.PopupMargin
}
