package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const DefaultLimit = 10

// ParseLimit reads a positive integer, falling back to def when raw is
// empty, malformed or not positive.
func ParseLimit(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// ParseCoordinate parses a latitude or longitude that must be a finite number.
func ParseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidCoordinates, raw)
	}
	return v, nil
}
