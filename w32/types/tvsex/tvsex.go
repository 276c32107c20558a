package tvsex

import "github.com/elliotmr/winstyle/w32/types/style"

// TreeViewExStyle is set with TVM_SETEXTENDEDSTYLE, not at creation.
type TreeViewExStyle uint32

const (
	NoSingleCollapse    TreeViewExStyle = 0x0001
	MultiSelect         TreeViewExStyle = 0x0002
	DoubleBuffer        TreeViewExStyle = 0x0004
	NoIndentState       TreeViewExStyle = 0x0008
	RichToolTip         TreeViewExStyle = 0x0010
	AutoHScroll         TreeViewExStyle = 0x0020
	FadeInOutExpandos   TreeViewExStyle = 0x0040
	PartialCheckBoxes   TreeViewExStyle = 0x0080
	ExclusionCheckBoxes TreeViewExStyle = 0x0100
	DimmedCheckBoxes    TreeViewExStyle = 0x0200
	DrawImageAsync      TreeViewExStyle = 0x0400
)

var Family = style.Family{
	Title:  "Tree view control extended styles.",
	Prefix: "TVS_EX_",
	Type:   "TreeViewExStyle",
	Flags: []style.Flag{
		style.NewBit("TVS_EX_NOSINGLECOLLAPSE", uint32(NoSingleCollapse)),
		style.NewBit("TVS_EX_MULTISELECT", uint32(MultiSelect)),
		style.NewBit("TVS_EX_DOUBLEBUFFER", uint32(DoubleBuffer)),
		style.NewBit("TVS_EX_NOINDENTSTATE", uint32(NoIndentState)),
		style.NewBit("TVS_EX_RICHTOOLTIP", uint32(RichToolTip)),
		style.NewBit("TVS_EX_AUTOHSCROLL", uint32(AutoHScroll)),
		style.NewBit("TVS_EX_FADEINOUTEXPANDOS", uint32(FadeInOutExpandos)),
		style.NewBit("TVS_EX_PARTIALCHECKBOXES", uint32(PartialCheckBoxes)),
		style.NewBit("TVS_EX_EXCLUSIONCHECKBOXES", uint32(ExclusionCheckBoxes)),
		style.NewBit("TVS_EX_DIMMEDCHECKBOXES", uint32(DimmedCheckBoxes)),
		style.NewBit("TVS_EX_DRAWIMAGEASYNC", uint32(DrawImageAsync)),
	},
}

func (s TreeViewExStyle) String() string {
	return Family.Format(uint32(s))
}
