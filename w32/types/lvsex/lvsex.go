package lvsex

import "github.com/elliotmr/winstyle/w32/types/style"

// ListViewExStyle is set with LVM_SETEXTENDEDLISTVIEWSTYLE, not at creation.
type ListViewExStyle uint32

const (
	GridLines             ListViewExStyle = 0x00000001
	SubItemImages         ListViewExStyle = 0x00000002
	CheckBoxes            ListViewExStyle = 0x00000004
	TrackSelect           ListViewExStyle = 0x00000008
	HeaderDragDrop        ListViewExStyle = 0x00000010
	FullRowSelect         ListViewExStyle = 0x00000020
	OneClickActivate      ListViewExStyle = 0x00000040
	TwoClickActivate      ListViewExStyle = 0x00000080
	FlatSB                ListViewExStyle = 0x00000100
	Regional              ListViewExStyle = 0x00000200
	InfoTip               ListViewExStyle = 0x00000400
	UnderlineHot          ListViewExStyle = 0x00000800
	UnderlineCold         ListViewExStyle = 0x00001000
	MultiWorkAreas        ListViewExStyle = 0x00002000
	LabelTip              ListViewExStyle = 0x00004000
	BorderSelect          ListViewExStyle = 0x00008000
	DoubleBuffer          ListViewExStyle = 0x00010000
	HideLabels            ListViewExStyle = 0x00020000
	SingleRow             ListViewExStyle = 0x00040000
	SnapToGrid            ListViewExStyle = 0x00080000
	SimpleSelect          ListViewExStyle = 0x00100000
	JustifyColumns        ListViewExStyle = 0x00200000
	TransparentBkgnd      ListViewExStyle = 0x00400000
	TransparentShadowText ListViewExStyle = 0x00800000
	AutoAutoArrange       ListViewExStyle = 0x01000000
	HeaderInAllViews      ListViewExStyle = 0x02000000
	AutoCheckSelect       ListViewExStyle = 0x08000000
	AutoSizeColumns       ListViewExStyle = 0x10000000
	ColumnSnapPoints      ListViewExStyle = 0x40000000
	ColumnOverflow        ListViewExStyle = 0x80000000
)

var Family = style.Family{
	Title:  "Extended list view control styles.",
	Prefix: "LVS_EX_",
	Type:   "ListViewExStyle",
	Flags: []style.Flag{
		style.NewBit("LVS_EX_GRIDLINES", uint32(GridLines)),
		style.NewBit("LVS_EX_SUBITEMIMAGES", uint32(SubItemImages)),
		style.NewBit("LVS_EX_CHECKBOXES", uint32(CheckBoxes)),
		style.NewBit("LVS_EX_TRACKSELECT", uint32(TrackSelect)),
		style.NewBit("LVS_EX_HEADERDRAGDROP", uint32(HeaderDragDrop)),
		style.NewBit("LVS_EX_FULLROWSELECT", uint32(FullRowSelect)),
		style.NewBit("LVS_EX_ONECLICKACTIVATE", uint32(OneClickActivate)),
		style.NewBit("LVS_EX_TWOCLICKACTIVATE", uint32(TwoClickActivate)),
		style.NewBit("LVS_EX_FLATSB", uint32(FlatSB)),
		style.NewBit("LVS_EX_REGIONAL", uint32(Regional)),
		style.NewBit("LVS_EX_INFOTIP", uint32(InfoTip)),
		style.NewBit("LVS_EX_UNDERLINEHOT", uint32(UnderlineHot)),
		style.NewBit("LVS_EX_UNDERLINECOLD", uint32(UnderlineCold)),
		style.NewBit("LVS_EX_MULTIWORKAREAS", uint32(MultiWorkAreas)),
		style.NewBit("LVS_EX_LABELTIP", uint32(LabelTip)),
		style.NewBit("LVS_EX_BORDERSELECT", uint32(BorderSelect)),
		style.NewBit("LVS_EX_DOUBLEBUFFER", uint32(DoubleBuffer)),
		style.NewBit("LVS_EX_HIDELABELS", uint32(HideLabels)),
		style.NewBit("LVS_EX_SINGLEROW", uint32(SingleRow)),
		style.NewBit("LVS_EX_SNAPTOGRID", uint32(SnapToGrid)),
		style.NewBit("LVS_EX_SIMPLESELECT", uint32(SimpleSelect)),
		style.NewBit("LVS_EX_JUSTIFYCOLUMNS", uint32(JustifyColumns)),
		style.NewBit("LVS_EX_TRANSPARENTBKGND", uint32(TransparentBkgnd)),
		style.NewBit("LVS_EX_TRANSPARENTSHADOWTEXT", uint32(TransparentShadowText)),
		style.NewBit("LVS_EX_AUTOAUTOARRANGE", uint32(AutoAutoArrange)),
		style.NewBit("LVS_EX_HEADERINALLVIEWS", uint32(HeaderInAllViews)),
		style.NewBit("LVS_EX_AUTOCHECKSELECT", uint32(AutoCheckSelect)),
		style.NewBit("LVS_EX_AUTOSIZECOLUMNS", uint32(AutoSizeColumns)),
		style.NewBit("LVS_EX_COLUMNSNAPPOINTS", uint32(ColumnSnapPoints)),
		style.NewBit("LVS_EX_COLUMNOVERFLOW", uint32(ColumnOverflow)),
	},
}

func (s ListViewExStyle) String() string {
	return Family.Format(uint32(s))
}
