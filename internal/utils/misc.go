package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func Ptr[T any](v T) *T {
	return &v
}

func Val[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// FormatDecimalText renders v with the shortest representation that
// parses back to the same float64.
func FormatDecimalText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseDecimalText reads a numeric text column. NULL or blank is 0;
// anything else must be a finite float.
func ParseDecimalText(s *string) (float64, error) {
	if s == nil {
		return 0, nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite decimal %q", trimmed)
	}
	return v, nil
}
