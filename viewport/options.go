package viewport

const (
	DefaultHeight         = 24
	DefaultScrollGrace    = 3
	DefaultScrollDistance = 5
	DefaultMinGutterWidth = 3
)

// Options configures a Viewport. A zero Height, ScrollDistance or
// MinGutterWidth takes its default; a zero ScrollGrace disables grace.
type Options struct {
	// Height is the number of text rows in the window.
	Height int
	// ScrollGrace is how many rows the cursor keeps from the window edge
	// before vertical movement scrolls. It is capped at a quarter of the
	// height.
	ScrollGrace int
	// ScrollDistance is the number of lines one wheel notch scrolls.
	ScrollDistance int
	// MinGutterWidth is the narrowest line-number column.
	MinGutterWidth int
}

func DefaultOptions() Options {
	return Options{
		Height:         DefaultHeight,
		ScrollGrace:    DefaultScrollGrace,
		ScrollDistance: DefaultScrollDistance,
		MinGutterWidth: DefaultMinGutterWidth,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.ScrollGrace < 0 {
		o.ScrollGrace = 0
	}
	if o.ScrollDistance <= 0 {
		o.ScrollDistance = d.ScrollDistance
	}
	if o.MinGutterWidth <= 0 {
		o.MinGutterWidth = d.MinGutterWidth
	}
	return o
}
