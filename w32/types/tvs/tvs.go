package tvs

import "github.com/elliotmr/winstyle/w32/types/style"

type TreeViewStyle uint32

const (
	HasButtons      TreeViewStyle = 0x0001
	HasLines        TreeViewStyle = 0x0002
	LinesAtRoot     TreeViewStyle = 0x0004
	EditLabels      TreeViewStyle = 0x0008
	DisableDragDrop TreeViewStyle = 0x0010
	ShowSelAlways   TreeViewStyle = 0x0020
	RTLReading      TreeViewStyle = 0x0040
	NoToolTips      TreeViewStyle = 0x0080
	CheckBoxes      TreeViewStyle = 0x0100
	TrackSelect     TreeViewStyle = 0x0200
	SingleExpand    TreeViewStyle = 0x0400
	InfoTip         TreeViewStyle = 0x0800
	FullRowSelect   TreeViewStyle = 0x1000
	NoScroll        TreeViewStyle = 0x2000
	NonEvenHeight   TreeViewStyle = 0x4000
	NoHScroll       TreeViewStyle = 0x8000
)

var Family = style.Family{
	Title:  "Tree view control styles.",
	Prefix: "TVS_",
	Type:   "TreeViewStyle",
	Flags: []style.Flag{
		style.NewBit("TVS_HASBUTTONS", uint32(HasButtons)),
		style.NewBit("TVS_HASLINES", uint32(HasLines)),
		style.NewBit("TVS_LINESATROOT", uint32(LinesAtRoot)),
		style.NewBit("TVS_EDITLABELS", uint32(EditLabels)),
		style.NewBit("TVS_DISABLEDRAGDROP", uint32(DisableDragDrop)),
		style.NewBit("TVS_SHOWSELALWAYS", uint32(ShowSelAlways)),
		style.NewBit("TVS_RTLREADING", uint32(RTLReading)),
		style.NewBit("TVS_NOTOOLTIPS", uint32(NoToolTips)),
		style.NewBit("TVS_CHECKBOXES", uint32(CheckBoxes)),
		style.NewBit("TVS_TRACKSELECT", uint32(TrackSelect)),
		style.NewBit("TVS_SINGLEEXPAND", uint32(SingleExpand)),
		style.NewBit("TVS_INFOTIP", uint32(InfoTip)),
		style.NewBit("TVS_FULLROWSELECT", uint32(FullRowSelect)),
		style.NewBit("TVS_NOSCROLL", uint32(NoScroll)),
		style.NewBit("TVS_NONEVENHEIGHT", uint32(NonEvenHeight)),
		style.NewBit("TVS_NOHSCROLL", uint32(NoHScroll)),
	},
}

func (s TreeViewStyle) String() string {
	return Family.Format(uint32(s))
}
