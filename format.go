// format.go: display formatting for numeric results
package calc

import (
	"math"
	"strconv"
)

// RoundSmart converts a double to a display string that hides binary
// floating-point noise: the value is rounded to at most 12 significant
// digits, then re-rendered minimally so trailing zeros and a dangling
// decimal point never appear (0.1+0.2 prints as "0.3", 5.0 as "5").
//
// Non-finite inputs degrade to strconv's direct rendering; callers are
// expected to have routed those through the error path before display.
func RoundSmart(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	// Plain notation for everything a calculator screen reasonably shows;
	// scientific only once digits stop being exact.
	if a := math.Abs(rounded); a != 0 && (a >= 1e15 || a < 1e-9) {
		return strconv.FormatFloat(rounded, 'g', -1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
