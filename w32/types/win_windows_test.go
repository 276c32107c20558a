package types

import (
	"testing"

	"github.com/lxn/win"
	"github.com/stretchr/testify/assert"

	"github.com/elliotmr/winstyle/w32/types/bs"
	"github.com/elliotmr/winstyle/w32/types/cbs"
	"github.com/elliotmr/winstyle/w32/types/ds"
	"github.com/elliotmr/winstyle/w32/types/dts"
	"github.com/elliotmr/winstyle/w32/types/es"
	"github.com/elliotmr/winstyle/w32/types/hds"
	"github.com/elliotmr/winstyle/w32/types/pbs"
	"github.com/elliotmr/winstyle/w32/types/ss"
	"github.com/elliotmr/winstyle/w32/types/ws"
	"github.com/elliotmr/winstyle/w32/types/wsex"
)

// Spot checks against the values lxn/win hands to user32 and comctl32.
func TestMatchesLxnWin(t *testing.T) {
	tests := []struct {
		name string
		want uint32
		got  uint32
	}{
		{"WS_OVERLAPPEDWINDOW", uint32(win.WS_OVERLAPPEDWINDOW), uint32(ws.OverlappedWindow)},
		{"WS_POPUPWINDOW", uint32(win.WS_POPUPWINDOW), uint32(ws.PopupWindow)},
		{"WS_CHILDWINDOW", uint32(win.WS_CHILDWINDOW), uint32(ws.ChildWindow)},
		{"WS_EX_CLIENTEDGE", uint32(win.WS_EX_CLIENTEDGE), uint32(wsex.ClientEdge)},
		{"WS_EX_PALETTEWINDOW", uint32(win.WS_EX_PALETTEWINDOW), uint32(wsex.PaletteWindow)},
		{"WS_EX_LAYERED", uint32(win.WS_EX_LAYERED), uint32(wsex.Layered)},
		{"DS_SHELLFONT", uint32(win.DS_SHELLFONT), uint32(ds.ShellFont)},
		{"DS_SETFOREGROUND", uint32(win.DS_SETFOREGROUND), uint32(ds.SetForeground)},
		{"BS_PUSHBUTTON", uint32(win.BS_PUSHBUTTON), uint32(bs.PushButton)},
		{"BS_3STATE", uint32(win.BS_3STATE), uint32(bs.ThreeState)},
		{"CBS_DROPDOWNLIST", uint32(win.CBS_DROPDOWNLIST), uint32(cbs.DropDownList)},
		{"DTS_TIMEFORMAT", uint32(win.DTS_TIMEFORMAT), uint32(dts.TimeFormat)},
		{"DTS_SHORTDATECENTURYFORMAT", uint32(win.DTS_SHORTDATECENTURYFORMAT), uint32(dts.ShortDateCenturyFormat)},
		{"ES_MULTILINE", uint32(win.ES_MULTILINE), uint32(es.Multiline)},
		{"HDS_NOSIZING", uint32(win.HDS_NOSIZING), uint32(hds.NoSizing)},
		{"PBS_MARQUEE", uint32(win.PBS_MARQUEE), uint32(pbs.Marquee)},
		{"SS_TYPEMASK", uint32(win.SS_TYPEMASK), uint32(ss.TypeMask)},
		{"SS_ELLIPSISMASK", uint32(win.SS_ELLIPSISMASK), uint32(ss.EllipsisMask)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}
