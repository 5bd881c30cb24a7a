package combobox

// Scroller is the host capability asked to bring a row of the filtered view
// into sight. total is the current length of that view.
type Scroller interface {
	ScrollIntoView(index, total int)
}

// ScrollFunc adapts a plain function to Scroller
type ScrollFunc func(index, total int)

func (f ScrollFunc) ScrollIntoView(index, total int) { f(index, total) }

// Viewport is a window of Height rows over the filtered view. It scrolls by
// the smallest amount that makes a requested row visible.
type Viewport struct {
	Height int
	Offset int
	moves  int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{Height: height}
}

// ScrollIntoView moves the window to the nearest edge that shows index.
// Rows already in the window cause no motion.
func (v *Viewport) ScrollIntoView(index, total int) {
	offset := v.Offset

	// Shrunk views must not leave the window hanging past the end
	if maxOffset := total - v.Height; offset > maxOffset {
		offset = max(maxOffset, 0)
	}

	if index >= 0 {
		if index < offset {
			offset = index
		} else if index >= offset+v.Height {
			offset = index - v.Height + 1
		}
	}

	if offset != v.Offset {
		v.Offset = offset
		v.moves++
	}
}

// Visible returns the half-open row range shown for a view of total rows
func (v *Viewport) Visible(total int) (start, end int) {
	start = min(v.Offset, max(total-v.Height, 0))
	end = min(start+v.Height, total)
	return start, end
}

// Moves returns how many times the window actually moved
func (v *Viewport) Moves() int {
	return v.moves
}

// Reset scrolls back to the top
func (v *Viewport) Reset() {
	if v.Offset != 0 {
		v.Offset = 0
		v.moves++
	}
}
