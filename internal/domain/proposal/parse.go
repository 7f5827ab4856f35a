package proposal

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces form input into a quantity or price. Anything that
// does not parse to a finite number yields 0; negatives and -0 become 0.
// A single comma is accepted as the decimal separator ("12,5").
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
