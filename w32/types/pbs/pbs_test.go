package pbs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"PBS_SMOOTH":        0x01,
		"PBS_VERTICAL":      0x04,
		"PBS_MARQUEE":       0x08,
		"PBS_SMOOTHREVERSE": 0x10,
	})
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestString(t *testing.T) {
	assert.Equal(t, "PBS_SMOOTH|PBS_VERTICAL", (Smooth | Vertical).String())
	assert.Equal(t, "0", ProgressBarStyle(0).String())
}
