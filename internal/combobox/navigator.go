package combobox

// Direction represents highlight movement
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// NoHighlight marks the absence of a highlighted option.
const NoHighlight = -1

// Step moves index one row in dir over a view of n options, wrapping at both
// ends. NoHighlight moves up to the last row and down to the first.
func Step(index, n int, dir Direction) int {
	if n <= 0 {
		return NoHighlight
	}
	if index >= n {
		index = 0
	}

	switch dir {
	case DirectionUp:
		if index <= 0 {
			return n - 1
		}
		return index - 1
	case DirectionDown:
		if index < 0 || index == n-1 {
			return 0
		}
		return index + 1
	default:
		return clamp(index, n)
	}
}

// clamp keeps index inside a view of n options, falling back to the first row.
func clamp(index, n int) int {
	if n <= 0 {
		return NoHighlight
	}
	if index < 0 || index >= n {
		return 0
	}
	return index
}
