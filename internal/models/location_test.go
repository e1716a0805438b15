package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation_Valid(t *testing.T) {
	loc, err := ParseLocation("Z1-R2-B3")
	assert.NoError(t, err)
	assert.Equal(t, Location{ZoneID: "Z1", RackID: "R2", BinID: "B3"}, loc)
	assert.Equal(t, "Z1-R2-B3", loc.String())
}

func TestParseLocation_Invalid(t *testing.T) {
	cases := []string{
		"",
		"Z1",
		"Z1-R2",
		"Z1-R2-B3-X4",
		"Z1--B3",
		"-R2-B3",
		"Z1-R2-",
	}
	for _, raw := range cases {
		_, err := ParseLocation(raw)
		assert.Error(t, err, "expected error for %q", raw)
	}
}
