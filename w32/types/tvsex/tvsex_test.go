package tvsex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"TVS_EX_NOSINGLECOLLAPSE":    0x0001,
		"TVS_EX_MULTISELECT":         0x0002,
		"TVS_EX_DOUBLEBUFFER":        0x0004,
		"TVS_EX_NOINDENTSTATE":       0x0008,
		"TVS_EX_RICHTOOLTIP":         0x0010,
		"TVS_EX_AUTOHSCROLL":         0x0020,
		"TVS_EX_FADEINOUTEXPANDOS":   0x0040,
		"TVS_EX_PARTIALCHECKBOXES":   0x0080,
		"TVS_EX_EXCLUSIONCHECKBOXES": 0x0100,
		"TVS_EX_DIMMEDCHECKBOXES":    0x0200,
		"TVS_EX_DRAWIMAGEASYNC":      0x0400,
	})
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestCheckBoxStates(t *testing.T) {
	v, err := Family.Parse("partialcheckboxes|exclusioncheckboxes|dimmedcheckboxes")
	assert.NoError(t, err)
	assert.Equal(t, uint32(PartialCheckBoxes|ExclusionCheckBoxes|DimmedCheckBoxes), v)
}
