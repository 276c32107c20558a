package ws

import "github.com/elliotmr/winstyle/w32/types/style"

type WindowStyle uint32

// Window style constants
const (
	Overlapped   WindowStyle = 0x00000000
	Popup        WindowStyle = 0x80000000
	Child        WindowStyle = 0x40000000
	Minimize     WindowStyle = 0x20000000
	Visible      WindowStyle = 0x10000000
	Disabled     WindowStyle = 0x08000000
	ClipSiblings WindowStyle = 0x04000000
	ClipChildren WindowStyle = 0x02000000
	Maximize     WindowStyle = 0x01000000
	Caption      WindowStyle = 0x00C00000
	Border       WindowStyle = 0x00800000
	DlgFrame     WindowStyle = 0x00400000
	VScroll      WindowStyle = 0x00200000
	HScroll      WindowStyle = 0x00100000
	SysMenu      WindowStyle = 0x00080000
	ThickFrame   WindowStyle = 0x00040000
	Group        WindowStyle = 0x00020000
	TabStop      WindowStyle = 0x00010000

	// Same bits as Group and TabStop; they only mean min/max box on a
	// window with a system menu.
	MinimizeBox WindowStyle = 0x00020000
	MaximizeBox WindowStyle = 0x00010000

	Tiled       = Overlapped
	Iconic      = Minimize
	SizeBox     = ThickFrame
	TiledWindow = OverlappedWindow

	OverlappedWindow = Overlapped | Caption | SysMenu | ThickFrame | MinimizeBox | MaximizeBox
	PopupWindow      = Popup | Border | SysMenu
	ChildWindow      = Child
)

var Family = style.Family{
	Title:  "Window styles.",
	Prefix: "WS_",
	Type:   "WindowStyle",
	Flags: []style.Flag{
		style.NewValue("WS_OVERLAPPED", uint32(Overlapped)),
		style.NewBit("WS_POPUP", uint32(Popup)),
		style.NewBit("WS_CHILD", uint32(Child)),
		style.NewBit("WS_MINIMIZE", uint32(Minimize)),
		style.NewBit("WS_VISIBLE", uint32(Visible)),
		style.NewBit("WS_DISABLED", uint32(Disabled)),
		style.NewBit("WS_CLIPSIBLINGS", uint32(ClipSiblings)),
		style.NewBit("WS_CLIPCHILDREN", uint32(ClipChildren)),
		style.NewBit("WS_MAXIMIZE", uint32(Maximize)),
		style.NewBit("WS_CAPTION", uint32(Caption)),
		style.NewBit("WS_BORDER", uint32(Border)),
		style.NewBit("WS_DLGFRAME", uint32(DlgFrame)),
		style.NewBit("WS_VSCROLL", uint32(VScroll)),
		style.NewBit("WS_HSCROLL", uint32(HScroll)),
		style.NewBit("WS_SYSMENU", uint32(SysMenu)),
		style.NewBit("WS_THICKFRAME", uint32(ThickFrame)),
		style.NewBit("WS_GROUP", uint32(Group)),
		style.NewBit("WS_TABSTOP", uint32(TabStop)),
		style.NewAlias("WS_MINIMIZEBOX", uint32(MinimizeBox), "WS_GROUP"),
		style.NewAlias("WS_MAXIMIZEBOX", uint32(MaximizeBox), "WS_TABSTOP"),
		style.NewAlias("WS_TILED", uint32(Tiled), "WS_OVERLAPPED"),
		style.NewAlias("WS_ICONIC", uint32(Iconic), "WS_MINIMIZE"),
		style.NewAlias("WS_SIZEBOX", uint32(SizeBox), "WS_THICKFRAME"),
		style.NewAlias("WS_TILEDWINDOW", uint32(TiledWindow), "WS_OVERLAPPEDWINDOW"),
		style.NewAggregate("WS_OVERLAPPEDWINDOW", uint32(OverlappedWindow),
			"WS_OVERLAPPED", "WS_CAPTION", "WS_SYSMENU", "WS_THICKFRAME", "WS_MINIMIZEBOX", "WS_MAXIMIZEBOX"),
		style.NewAggregate("WS_POPUPWINDOW", uint32(PopupWindow), "WS_POPUP", "WS_BORDER", "WS_SYSMENU"),
		style.NewAggregate("WS_CHILDWINDOW", uint32(ChildWindow), "WS_CHILD"),
	},
}

func (s WindowStyle) String() string {
	return Family.Format(uint32(s))
}
