package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"DS_ABSALIGN":      0x01,
		"DS_SYSMODAL":      0x02,
		"DS_LOCALEDIT":     0x20,
		"DS_SETFONT":       0x40,
		"DS_MODALFRAME":    0x80,
		"DS_NOIDLEMSG":     0x100,
		"DS_SETFOREGROUND": 0x200,
		"DS_3DLOOK":        0x0004,
		"DS_FIXEDSYS":      0x0008,
		"DS_NOFAILCREATE":  0x0010,
		"DS_CONTROL":       0x0400,
		"DS_CENTER":        0x0800,
		"DS_CENTERMOUSE":   0x1000,
		"DS_CONTEXTHELP":   0x2000,
		"DS_SHELLFONT":     0x0048,
	})
}

func TestFamily(t *testing.T) {
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestShellFont(t *testing.T) {
	assert.Equal(t, SetFont|FixedSys, ShellFont)
	assert.Equal(t, "DS_SETFONT|DS_FIXEDSYS", ShellFont.String())
	assert.Equal(t, "0", DialogStyle(0).String())
}
