package dts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"DTS_UPDOWN":                 0x0001,
		"DTS_SHOWNONE":               0x0002,
		"DTS_SHORTDATEFORMAT":        0x0000,
		"DTS_LONGDATEFORMAT":         0x0004,
		"DTS_SHORTDATECENTURYFORMAT": 0x000C,
		"DTS_TIMEFORMAT":             0x0009,
		"DTS_APPCANPARSE":            0x0010,
		"DTS_RIGHTALIGN":             0x0020,
	})
}

func TestFamily(t *testing.T) {
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestString(t *testing.T) {
	assert.Equal(t, "DTS_SHORTDATEFORMAT", ShortDateFormat.String())
	assert.Equal(t, "DTS_TIMEFORMAT", TimeFormat.String())
	assert.Equal(t, "DTS_SHORTDATECENTURYFORMAT|DTS_SHOWNONE", (ShortDateCenturyFormat | ShowNone).String())
}
