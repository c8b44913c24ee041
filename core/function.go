package core

import (
	"time"
)

// Clock abstracts the current time so timestamps can be pinned in tests
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a clock truncated to the precision postgres keeps
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsValidColor accepts "" (no color) or #RRGGBB
func IsValidColor(color string) bool {
	if color == "" {
		return true
	}
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for i := 1; i < len(color); i++ {
		if !isHexChar(color[i]) {
			return false
		}
	}
	return true
}
