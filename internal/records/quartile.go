package records

import "strings"

// Quartile is the ordinal alignment band a program was ranked into. The
// canonical labels match the workbook values; source files sometimes carry
// the short codes Q1-Q4 instead.
type Quartile string

const (
	QuartileMostAligned  Quartile = "Most Aligned"
	QuartileMoreAligned  Quartile = "More Aligned"
	QuartileLessAligned  Quartile = "Less Aligned"
	QuartileLeastAligned Quartile = "Least Aligned"
	QuartileNone         Quartile = ""
)

// Quartiles lists the four bands in priority order, most aligned first.
var Quartiles = []Quartile{
	QuartileMostAligned,
	QuartileMoreAligned,
	QuartileLessAligned,
	QuartileLeastAligned,
}

// ParseQuartile normalizes a cell value to a canonical band. Unknown values
// map to QuartileNone, the "no alignment data" sentinel.
func ParseQuartile(raw string) Quartile {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "most aligned", "q1":
		return QuartileMostAligned
	case "more aligned", "q2":
		return QuartileMoreAligned
	case "less aligned", "q3":
		return QuartileLessAligned
	case "least aligned", "q4":
		return QuartileLeastAligned
	default:
		return QuartileNone
	}
}

// Code returns the short form (Q1-Q4) used in report headers.
func (q Quartile) Code() string {
	switch q {
	case QuartileMostAligned:
		return "Q1"
	case QuartileMoreAligned:
		return "Q2"
	case QuartileLessAligned:
		return "Q3"
	case QuartileLeastAligned:
		return "Q4"
	default:
		return ""
	}
}

// Valid reports whether q is one of the four canonical bands.
func (q Quartile) Valid() bool {
	return q.Code() != ""
}

// Rank orders bands for display, 1 = most aligned. Unknown bands sort last.
func (q Quartile) Rank() int {
	switch q {
	case QuartileMostAligned:
		return 1
	case QuartileMoreAligned:
		return 2
	case QuartileLessAligned:
		return 3
	case QuartileLeastAligned:
		return 4
	default:
		return 5
	}
}
