package lvs

import "github.com/elliotmr/winstyle/w32/types/style"

type ListViewStyle uint32

const (
	Icon            ListViewStyle = 0x0000
	Report          ListViewStyle = 0x0001
	SmallIcon       ListViewStyle = 0x0002
	List            ListViewStyle = 0x0003
	TypeMask        ListViewStyle = 0x0003
	SingleSel       ListViewStyle = 0x0004
	ShowSelAlways   ListViewStyle = 0x0008
	SortAscending   ListViewStyle = 0x0010
	SortDescending  ListViewStyle = 0x0020
	ShareImageLists ListViewStyle = 0x0040
	NoLabelWrap     ListViewStyle = 0x0080
	AutoArrange     ListViewStyle = 0x0100
	EditLabels      ListViewStyle = 0x0200
	OwnerData       ListViewStyle = 0x1000
	NoScroll        ListViewStyle = 0x2000

	// TypeStyleMask covers the styles whose meaning depends on the view.
	TypeStyleMask ListViewStyle = 0xFC00

	AlignTop  ListViewStyle = 0x0000
	AlignLeft ListViewStyle = 0x0800
	AlignMask ListViewStyle = 0x0C00

	// OwnerDrawFixed only applies to report view and reuses a bit of
	// AlignMask, which only applies to icon views.
	OwnerDrawFixed ListViewStyle = 0x0400
	NoColumnHeader ListViewStyle = 0x4000
	NoSortHeader   ListViewStyle = 0x8000
)

var Family = style.Family{
	Title:  "List view control styles.",
	Prefix: "LVS_",
	Type:   "ListViewStyle",
	Flags: []style.Flag{
		style.NewSelector("LVS_ICON", uint32(Icon), "LVS_TYPEMASK"),
		style.NewSelector("LVS_REPORT", uint32(Report), "LVS_TYPEMASK"),
		style.NewSelector("LVS_SMALLICON", uint32(SmallIcon), "LVS_TYPEMASK"),
		style.NewSelector("LVS_LIST", uint32(List), "LVS_TYPEMASK"),
		style.NewMask("LVS_TYPEMASK", uint32(TypeMask)),
		style.NewBit("LVS_SINGLESEL", uint32(SingleSel)),
		style.NewBit("LVS_SHOWSELALWAYS", uint32(ShowSelAlways)),
		style.NewBit("LVS_SORTASCENDING", uint32(SortAscending)),
		style.NewBit("LVS_SORTDESCENDING", uint32(SortDescending)),
		style.NewBit("LVS_SHAREIMAGELISTS", uint32(ShareImageLists)),
		style.NewBit("LVS_NOLABELWRAP", uint32(NoLabelWrap)),
		style.NewBit("LVS_AUTOARRANGE", uint32(AutoArrange)),
		style.NewBit("LVS_EDITLABELS", uint32(EditLabels)),
		style.NewBit("LVS_OWNERDATA", uint32(OwnerData)),
		style.NewBit("LVS_NOSCROLL", uint32(NoScroll)),
		style.NewMask("LVS_TYPESTYLEMASK", uint32(TypeStyleMask),
			"LVS_ALIGNMASK", "LVS_OWNERDRAWFIXED", "LVS_OWNERDATA", "LVS_NOSCROLL",
			"LVS_NOCOLUMNHEADER", "LVS_NOSORTHEADER"),
		style.NewSelector("LVS_ALIGNTOP", uint32(AlignTop), "LVS_ALIGNMASK"),
		style.NewSelector("LVS_ALIGNLEFT", uint32(AlignLeft), "LVS_ALIGNMASK"),
		style.NewMask("LVS_ALIGNMASK", uint32(AlignMask)),
		style.NewBit("LVS_OWNERDRAWFIXED", uint32(OwnerDrawFixed), "LVS_ALIGNMASK"),
		style.NewBit("LVS_NOCOLUMNHEADER", uint32(NoColumnHeader)),
		style.NewBit("LVS_NOSORTHEADER", uint32(NoSortHeader)),
	},
}

// View extracts the view selector.
func (s ListViewStyle) View() ListViewStyle {
	return s & TypeMask
}

// Align extracts the icon view alignment.
func (s ListViewStyle) Align() ListViewStyle {
	return s & AlignMask
}

func (s ListViewStyle) String() string {
	return Family.Format(uint32(s))
}
