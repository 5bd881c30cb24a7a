package domain

import (
	"fmt"
	"reflect"
)

// Option represents one selectable entry of a combobox catalog.
// Value is a string or a number; labels and values may repeat.
type Option struct {
	Value any    `toml:"value"`
	Label string `toml:"label"`
}

func (o Option) String() string {
	return fmt.Sprintf("%v (%s)", o.Value, o.Label)
}

// SameValue reports whether two option values are equal. Numbers compare by
// numeric value regardless of their Go type; strings compare exactly.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	an, aNum := asFloat(a)
	bn, bNum := asFloat(b)
	if aNum || bNum {
		return aNum && bNum && an == bn
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// FindByValue returns the index of the first option carrying value, or -1.
func FindByValue(options []Option, value any) int {
	for i, opt := range options {
		if SameValue(opt.Value, value) {
			return i
		}
	}
	return -1
}
