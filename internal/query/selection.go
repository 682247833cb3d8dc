package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query string keys read by ParseSelection.
const (
	ParamName     = "name"
	ParamMatch    = "match"
	ParamPosition = "position"
	ParamTeam     = "team"

	// AllMatches is the match value meaning "no match filter".
	AllMatches = "All"
)

// ParseSelection reads filter facets from URL query values. Repeated keys
// build a facet's value set; empty values are dropped and the rest are kept
// as sent, since Filter matches exactly. The match facet takes
// a single integer, or "All"/empty for no filter.
func ParseSelection(values url.Values) (Selection, error) {
	sel := Selection{
		Names:     nonEmpty(values[ParamName]),
		Positions: nonEmpty(values[ParamPosition]),
		Teams:     nonEmpty(values[ParamTeam]),
	}

	match := strings.TrimSpace(values.Get(ParamMatch))
	if match != "" && !strings.EqualFold(match, AllMatches) {
		n, err := strconv.Atoi(match)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid match number %q: %w", match, err)
		}
		sel.MatchNumber = &n
	}
	return sel, nil
}

// Values encodes sel back into query values, the inverse of ParseSelection.
func (s Selection) Values() url.Values {
	v := url.Values{}
	for _, n := range s.Names {
		v.Add(ParamName, n)
	}
	if s.MatchNumber != nil {
		v.Set(ParamMatch, strconv.Itoa(*s.MatchNumber))
	}
	for _, p := range s.Positions {
		v.Add(ParamPosition, p)
	}
	for _, t := range s.Teams {
		v.Add(ParamTeam, t)
	}
	return v
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
