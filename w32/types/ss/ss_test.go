package ss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/style/styletest"
)

func TestValues(t *testing.T) {
	styletest.CheckValues(t, &Family, map[string]uint32{
		"SS_LEFT":            0x00000000,
		"SS_CENTER":          0x00000001,
		"SS_RIGHT":           0x00000002,
		"SS_ICON":            0x00000003,
		"SS_BLACKRECT":       0x00000004,
		"SS_GRAYRECT":        0x00000005,
		"SS_WHITERECT":       0x00000006,
		"SS_BLACKFRAME":      0x00000007,
		"SS_GRAYFRAME":       0x00000008,
		"SS_WHITEFRAME":      0x00000009,
		"SS_USERITEM":        0x0000000A,
		"SS_SIMPLE":          0x0000000B,
		"SS_LEFTNOWORDWRAP":  0x0000000C,
		"SS_OWNERDRAW":       0x0000000D,
		"SS_BITMAP":          0x0000000E,
		"SS_ENHMETAFILE":     0x0000000F,
		"SS_ETCHEDHORZ":      0x00000010,
		"SS_ETCHEDVERT":      0x00000011,
		"SS_ETCHEDFRAME":     0x00000012,
		"SS_TYPEMASK":        0x0000001F,
		"SS_REALSIZECONTROL": 0x00000040,
		"SS_NOPREFIX":        0x00000080,
		"SS_NOTIFY":          0x00000100,
		"SS_CENTERIMAGE":     0x00000200,
		"SS_RIGHTJUST":       0x00000400,
		"SS_REALSIZEIMAGE":   0x00000800,
		"SS_SUNKEN":          0x00001000,
		"SS_EDITCONTROL":     0x00002000,
		"SS_ENDELLIPSIS":     0x00004000,
		"SS_PATHELLIPSIS":    0x00008000,
		"SS_WORDELLIPSIS":    0x0000C000,
		"SS_ELLIPSISMASK":    0x0000C000,
	})
}

func TestFamily(t *testing.T) {
	styletest.CheckFamily(t, &Family)
	styletest.CheckRoundTrip(t, &Family)
}

func TestTypeMask(t *testing.T) {
	for _, sel := range Family.Selectors("SS_TYPEMASK") {
		v := StaticStyle(sel.Value)
		assert.Equal(t, v, v&TypeMask, sel.Name)
		assert.Equal(t, v, (v | Notify | Sunken | EndEllipsis).Type(), sel.Name)
	}
	for _, m := range []StaticStyle{RealSizeControl, NoPrefix, Notify, CenterImage, RightJust,
		RealSizeImage, Sunken, EditControl, EndEllipsis, PathEllipsis, WordEllipsis} {
		assert.Zero(t, m&TypeMask, "%d", m)
	}
}

func TestEllipsisMask(t *testing.T) {
	for _, v := range []StaticStyle{EndEllipsis, PathEllipsis, WordEllipsis} {
		assert.Equal(t, v, v&EllipsisMask)
		assert.Equal(t, v, (v | Bitmap | Notify).Ellipsis())
	}
	assert.Zero(t, TypeMask&EllipsisMask)
}

func TestString(t *testing.T) {
	assert.Equal(t, "SS_LEFT", Left.String())
	assert.Equal(t, "SS_BITMAP|SS_CENTERIMAGE", (Bitmap | CenterImage).String())
	assert.Equal(t, "SS_LEFTNOWORDWRAP|SS_WORDELLIPSIS|SS_NOPREFIX", (LeftNoWordWrap | NoPrefix | WordEllipsis).String())
}
