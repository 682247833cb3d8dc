package templates

import "fmt"

// Highlight is a display intent for a win percentage cell. The page maps
// Favored to green and Underdog to red.
type Highlight int

const (
	Underdog Highlight = iota
	Favored
)

func (h Highlight) Class() string {
	if h == Favored {
		return "favored"
	}
	return "underdog"
}

// WinHighlight tags the home and away cells of a row. The home side is only
// favored when strictly ahead, so an even split favors the away side.
func WinHighlight(row WinRow) (home, away Highlight) {
	if row.HomeWinPct > row.AwayWinPct {
		return Favored, Underdog
	}
	return Underdog, Favored
}

// FormatPoints renders fantasy points with two decimals.
func FormatPoints(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
