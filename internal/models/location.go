package models

import (
	"fmt"
	"strings"
)

// Location is the composite zone-rack-bin key embedded in an item's
// current_location field.
type Location struct {
	ZoneID string
	RackID string
	BinID  string
}

// ParseLocation splits a composite location key, requiring exactly three
// non-empty segments. Malformed keys are rejected at write time so they can
// never reach the bin lookup.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Location{}, fmt.Errorf("invalid location %q: want zone-rack-bin", s)
	}
	for _, p := range parts {
		if p == "" {
			return Location{}, fmt.Errorf("invalid location %q: empty segment", s)
		}
	}
	return Location{ZoneID: parts[0], RackID: parts[1], BinID: parts[2]}, nil
}

func (l Location) String() string {
	return l.ZoneID + "-" + l.RackID + "-" + l.BinID
}
