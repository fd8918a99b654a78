package weather

import (
	"strings"

	"order-weather/internal/tree"
)

// Summaries reported when no provider text is available.
const (
	SummaryAvailable      = "weather available"
	SummaryNoLocationData = "no location data"
	SummaryNoForecastData = "no forecast data"
	SummaryQueryError     = "error querying weather"
	SummaryNoSearchText   = "no search text"
)

// Source labels say which path produced a signal.
const (
	sourceForecast = "forecast"
	sourceSalvaged = "salvaged"
	sourceDegraded = "degraded"
)

const hashKey = "hash"

var (
	rainProbabilityKeys = []string{"rain_probability", "rainProbability", "rain"}
	summaryKeys         = []string{"summary", "description", "text", "title", "name"}
	locationSummaryKeys = []string{"name", "description", "display_name", "summary"}
)

// candidateLists returns the lists in a location response that may hold
// location candidates, in lookup order.
func candidateLists(loc tree.Node) []tree.Node {
	var lists []tree.Node
	for _, n := range []tree.Node{
		loc.Path("data", "locations"),
		loc.Path("data"),
		loc.Path("locations"),
		loc,
	} {
		if n.Kind() == tree.List {
			lists = append(lists, n)
		}
	}
	return lists
}

// usableHash returns the location hash stored on n, if it is a non-blank
// string or a number.
func usableHash(n tree.Node) (string, bool) {
	v := n.Path(hashKey)
	if s, ok := v.AsString(); ok {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	if _, ok := v.AsFloat(); ok {
		return v.Text()
	}
	return "", false
}

// locationHash finds the hash identifying a location in a location lookup
// response. The top-level hash wins, then the first element of each known
// candidate list.
func locationHash(loc tree.Node) (string, bool) {
	if h, ok := usableHash(loc); ok {
		return h, true
	}
	for _, list := range candidateLists(loc) {
		first, _ := list.Index(0)
		if h, ok := usableHash(first); ok {
			return h, true
		}
	}
	return "", false
}

// searchHash is locationHash for text search responses. Candidates whose
// country_name contains country are preferred over the rest.
func searchHash(loc tree.Node, country string) (string, bool) {
	if h, ok := usableHash(loc); ok {
		return h, true
	}
	lists := candidateLists(loc)
	if country = strings.ToLower(strings.TrimSpace(country)); country != "" {
		for _, list := range lists {
			for _, c := range list.Items() {
				name, ok := c.Path("country_name").AsString()
				if !ok || !strings.Contains(strings.ToLower(name), country) {
					continue
				}
				if h, ok := usableHash(c); ok {
					return h, true
				}
			}
		}
	}
	for _, list := range lists {
		for _, c := range list.Items() {
			if h, ok := usableHash(c); ok {
				return h, true
			}
		}
	}
	return "", false
}

// firstPeriod returns the first daily period of a forecast response.
func firstPeriod(forecast tree.Node) tree.Node {
	if day := forecast.Path("data", "days", 0); day.Exists() {
		return day
	}
	return forecast.Path("days", 0)
}

func periodSummary(day tree.Node) (string, bool) {
	if s, ok := day.Path("symbol").Text(); ok {
		return "Symbol: " + s, true
	}
	for _, n := range []tree.Node{
		day.Path("temperature_max"),
		day.Path("temperatureMax"),
		day.Path("temperature", "max"),
	} {
		if s, ok := n.Text(); ok {
			return "Tmax: " + s, true
		}
	}
	return "", false
}
