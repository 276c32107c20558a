package hds

import "github.com/elliotmr/winstyle/w32/types/style"

type HeaderStyle uint32

const (
	Horz      HeaderStyle = 0x0000
	Buttons   HeaderStyle = 0x0002
	HotTrack  HeaderStyle = 0x0004
	Hidden    HeaderStyle = 0x0008
	DragDrop  HeaderStyle = 0x0040
	FullDrag  HeaderStyle = 0x0080
	FilterBar HeaderStyle = 0x0100
	Flat      HeaderStyle = 0x0200

	// Vista and later.
	CheckBoxes HeaderStyle = 0x0400
	NoSizing   HeaderStyle = 0x0800
	Overflow   HeaderStyle = 0x1000
)

var Family = style.Family{
	Title:  "Header control styles.",
	Prefix: "HDS_",
	Type:   "HeaderStyle",
	Flags: []style.Flag{
		style.NewValue("HDS_HORZ", uint32(Horz)),
		style.NewBit("HDS_BUTTONS", uint32(Buttons)),
		style.NewBit("HDS_HOTTRACK", uint32(HotTrack)),
		style.NewBit("HDS_HIDDEN", uint32(Hidden)),
		style.NewBit("HDS_DRAGDROP", uint32(DragDrop)),
		style.NewBit("HDS_FULLDRAG", uint32(FullDrag)),
		style.NewBit("HDS_FILTERBAR", uint32(FilterBar)),
		style.NewBit("HDS_FLAT", uint32(Flat)),
		style.NewBit("HDS_CHECKBOXES", uint32(CheckBoxes)),
		style.NewBit("HDS_NOSIZING", uint32(NoSizing)),
		style.NewBit("HDS_OVERFLOW", uint32(Overflow)),
	},
}

func (s HeaderStyle) String() string {
	return Family.Format(uint32(s))
}
