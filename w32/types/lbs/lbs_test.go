package lbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
	"github.com/elliotmr/winstyle/w32/types/ws"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"LBS_NOTIFY":            0x0001,
		"LBS_SORT":              0x0002,
		"LBS_NOREDRAW":          0x0004,
		"LBS_MULTIPLESEL":       0x0008,
		"LBS_OWNERDRAWFIXED":    0x0010,
		"LBS_OWNERDRAWVARIABLE": 0x0020,
		"LBS_HASSTRINGS":        0x0040,
		"LBS_USETABSTOPS":       0x0080,
		"LBS_NOINTEGRALHEIGHT":  0x0100,
		"LBS_MULTICOLUMN":       0x0200,
		"LBS_WANTKEYBOARDINPUT": 0x0400,
		"LBS_EXTENDEDSEL":       0x0800,
		"LBS_DISABLENOSCROLL":   0x1000,
		"LBS_NODATA":            0x2000,
		"LBS_NOSEL":             0x4000,
		"LBS_COMBOBOX":          0x8000,
		"LBS_STANDARD":          0x00A00003,
	})
}

func TestFamily(t *testing.T) {
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestStandard(t *testing.T) {
	v, err := Family.Combine("LBS_NOTIFY", "LBS_SORT", "WS_VSCROLL", "WS_BORDER")
	require.NoError(t, err)
	assert.Equal(t, v, uint32(Standard))
	assert.Equal(t, uint32(Notify|Sort)|uint32(ws.VScroll|ws.Border), uint32(Standard))
	assert.Equal(t, ws.VScroll|ws.Border, Standard.Window())
	assert.Equal(t, "LBS_NOTIFY|LBS_SORT|0xA00000", Standard.String())
}

func TestParseWindowBits(t *testing.T) {
	v, err := Family.Parse("LBS_NOTIFY|LBS_SORT|WS_VSCROLL|WS_BORDER")
	require.NoError(t, err)
	assert.Equal(t, uint32(Standard), v)
}
