package lbs

import (
	"github.com/elliotmr/winstyle/w32/types/style"
	"github.com/elliotmr/winstyle/w32/types/ws"
)

type ListBoxStyle uint32

const (
	Notify            ListBoxStyle = 0x0001
	Sort              ListBoxStyle = 0x0002
	NoRedraw          ListBoxStyle = 0x0004
	MultipleSel       ListBoxStyle = 0x0008
	OwnerDrawFixed    ListBoxStyle = 0x0010
	OwnerDrawVariable ListBoxStyle = 0x0020
	HasStrings        ListBoxStyle = 0x0040
	UseTabStops       ListBoxStyle = 0x0080
	NoIntegralHeight  ListBoxStyle = 0x0100
	MultiColumn       ListBoxStyle = 0x0200
	WantKeyboardInput ListBoxStyle = 0x0400
	ExtendedSel       ListBoxStyle = 0x0800
	DisableNoScroll   ListBoxStyle = 0x1000
	NoData            ListBoxStyle = 0x2000
	NoSel             ListBoxStyle = 0x4000
	ComboBox          ListBoxStyle = 0x8000

	// Standard borrows its scroll bar and border from the window styles.
	Standard = Notify | Sort | ListBoxStyle(ws.VScroll|ws.Border)
)

var Family = style.Family{
	Title:  "List box control styles.",
	Prefix: "LBS_",
	Type:   "ListBoxStyle",
	Flags: []style.Flag{
		style.NewBit("LBS_NOTIFY", uint32(Notify)),
		style.NewBit("LBS_SORT", uint32(Sort)),
		style.NewBit("LBS_NOREDRAW", uint32(NoRedraw)),
		style.NewBit("LBS_MULTIPLESEL", uint32(MultipleSel)),
		style.NewBit("LBS_OWNERDRAWFIXED", uint32(OwnerDrawFixed)),
		style.NewBit("LBS_OWNERDRAWVARIABLE", uint32(OwnerDrawVariable)),
		style.NewBit("LBS_HASSTRINGS", uint32(HasStrings)),
		style.NewBit("LBS_USETABSTOPS", uint32(UseTabStops)),
		style.NewBit("LBS_NOINTEGRALHEIGHT", uint32(NoIntegralHeight)),
		style.NewBit("LBS_MULTICOLUMN", uint32(MultiColumn)),
		style.NewBit("LBS_WANTKEYBOARDINPUT", uint32(WantKeyboardInput)),
		style.NewBit("LBS_EXTENDEDSEL", uint32(ExtendedSel)),
		style.NewBit("LBS_DISABLENOSCROLL", uint32(DisableNoScroll)),
		style.NewBit("LBS_NODATA", uint32(NoData)),
		style.NewBit("LBS_NOSEL", uint32(NoSel)),
		style.NewBit("LBS_COMBOBOX", uint32(ComboBox)),
		style.NewAggregate("LBS_STANDARD", uint32(Standard), "LBS_NOTIFY", "LBS_SORT", "WS_VSCROLL", "WS_BORDER"),
	},
	Deps: []*style.Family{&ws.Family},
}

// Window returns the window style bits carried by s. List box styles only
// use the low word.
func (s ListBoxStyle) Window() ws.WindowStyle {
	return ws.WindowStyle(s) &^ 0xFFFF
}

func (s ListBoxStyle) String() string {
	return Family.Format(uint32(s))
}
