package rbs

import "github.com/elliotmr/winstyle/w32/types/style"

type RebarStyle uint32

const (
	ToolTips        RebarStyle = 0x00000100
	VarHeight       RebarStyle = 0x00000200
	BandBorders     RebarStyle = 0x00000400
	FixedOrder      RebarStyle = 0x00000800
	RegisterDrop    RebarStyle = 0x00001000
	AutoSize        RebarStyle = 0x00002000
	VerticalGripper RebarStyle = 0x00004000
	DblClkToggle    RebarStyle = 0x00008000
)

var Family = style.Family{
	Title:  "Rebar control styles.",
	Prefix: "RBS_",
	Type:   "RebarStyle",
	Flags: []style.Flag{
		style.NewBit("RBS_TOOLTIPS", uint32(ToolTips)),
		style.NewBit("RBS_VARHEIGHT", uint32(VarHeight)),
		style.NewBit("RBS_BANDBORDERS", uint32(BandBorders)),
		style.NewBit("RBS_FIXEDORDER", uint32(FixedOrder)),
		style.NewBit("RBS_REGISTERDROP", uint32(RegisterDrop)),
		style.NewBit("RBS_AUTOSIZE", uint32(AutoSize)),
		style.NewBit("RBS_VERTICALGRIPPER", uint32(VerticalGripper)),
		style.NewBit("RBS_DBLCLKTOGGLE", uint32(DblClkToggle)),
	},
}

func (s RebarStyle) String() string {
	return Family.Format(uint32(s))
}
