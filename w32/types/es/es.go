package es

import "github.com/elliotmr/winstyle/w32/types/style"

type EditStyle uint32

const (
	Left        EditStyle = 0x0000
	Center      EditStyle = 0x0001
	Right       EditStyle = 0x0002
	Multiline   EditStyle = 0x0004
	Uppercase   EditStyle = 0x0008
	Lowercase   EditStyle = 0x0010
	Password    EditStyle = 0x0020
	AutoVScroll EditStyle = 0x0040
	AutoHScroll EditStyle = 0x0080
	NoHideSel   EditStyle = 0x0100
	OEMConvert  EditStyle = 0x0400
	ReadOnly    EditStyle = 0x0800
	WantReturn  EditStyle = 0x1000
	Number      EditStyle = 0x2000
)

var Family = style.Family{
	Title:  "Edit control styles.",
	Prefix: "ES_",
	Type:   "EditStyle",
	Flags: []style.Flag{
		style.NewValue("ES_LEFT", uint32(Left)),
		style.NewBit("ES_CENTER", uint32(Center)),
		style.NewBit("ES_RIGHT", uint32(Right)),
		style.NewBit("ES_MULTILINE", uint32(Multiline)),
		style.NewBit("ES_UPPERCASE", uint32(Uppercase)),
		style.NewBit("ES_LOWERCASE", uint32(Lowercase)),
		style.NewBit("ES_PASSWORD", uint32(Password)),
		style.NewBit("ES_AUTOVSCROLL", uint32(AutoVScroll)),
		style.NewBit("ES_AUTOHSCROLL", uint32(AutoHScroll)),
		style.NewBit("ES_NOHIDESEL", uint32(NoHideSel)),
		style.NewBit("ES_OEMCONVERT", uint32(OEMConvert)),
		style.NewBit("ES_READONLY", uint32(ReadOnly)),
		style.NewBit("ES_WANTRETURN", uint32(WantReturn)),
		style.NewBit("ES_NUMBER", uint32(Number)),
	},
}

func (s EditStyle) String() string {
	return Family.Format(uint32(s))
}
