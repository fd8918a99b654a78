package openstreetmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SearchResult is one candidate returned by the Nominatim search endpoint.
// Only the fields the resolver reads are decoded; compatible services
// disagree on the types of the rest (place_id, place_rank, importance).
type SearchResult struct {
	Lat         Coordinate `json:"lat"`
	Lon         Coordinate `json:"lon"`
	DisplayName string     `json:"display_name"`
}

// Coordinate holds the raw text of a lat/lon field. Nominatim sends strings,
// but some deployments and proxies send bare numbers; both are accepted here
// and parsing is left to the caller.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("coordinate is neither string nor number: %s", string(data))
	}
	*c = Coordinate(n.String())
	return nil
}
