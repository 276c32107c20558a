package wsex

import "github.com/elliotmr/winstyle/w32/types/style"

type ExtendedWindowStyle uint32

const (
	DlgModalFrame  ExtendedWindowStyle = 0x00000001
	NoParentNotify ExtendedWindowStyle = 0x00000004
	TopMost        ExtendedWindowStyle = 0x00000008
	AcceptFiles    ExtendedWindowStyle = 0x00000010
	Transparent    ExtendedWindowStyle = 0x00000020
	MDIChild       ExtendedWindowStyle = 0x00000040
	ToolWindow     ExtendedWindowStyle = 0x00000080
	WindowEdge     ExtendedWindowStyle = 0x00000100
	ClientEdge     ExtendedWindowStyle = 0x00000200
	ContextHelp    ExtendedWindowStyle = 0x00000400
	Right          ExtendedWindowStyle = 0x00001000
	Left           ExtendedWindowStyle = 0x00000000
	RTLReading     ExtendedWindowStyle = 0x00002000
	LTRReading     ExtendedWindowStyle = 0x00000000
	LeftScrollbar  ExtendedWindowStyle = 0x00004000
	RightScrollbar ExtendedWindowStyle = 0x00000000

	ControlParent ExtendedWindowStyle = 0x00010000
	StaticEdge    ExtendedWindowStyle = 0x00020000
	AppWindow     ExtendedWindowStyle = 0x00040000

	OverlappedWindow = WindowEdge | ClientEdge
	PaletteWindow    = WindowEdge | ToolWindow | TopMost

	Layered             ExtendedWindowStyle = 0x00080000
	NoInheritLayout     ExtendedWindowStyle = 0x00100000
	NoRedirectionBitmap ExtendedWindowStyle = 0x00200000
	LayoutRTL           ExtendedWindowStyle = 0x00400000
	Composited          ExtendedWindowStyle = 0x02000000
	NoActivate          ExtendedWindowStyle = 0x08000000
)

var Family = style.Family{
	Title:  "Extended window styles.",
	Prefix: "WS_EX_",
	Type:   "ExtendedWindowStyle",
	Flags: []style.Flag{
		style.NewBit("WS_EX_DLGMODALFRAME", uint32(DlgModalFrame)),
		style.NewBit("WS_EX_NOPARENTNOTIFY", uint32(NoParentNotify)),
		style.NewBit("WS_EX_TOPMOST", uint32(TopMost)),
		style.NewBit("WS_EX_ACCEPTFILES", uint32(AcceptFiles)),
		style.NewBit("WS_EX_TRANSPARENT", uint32(Transparent)),
		style.NewBit("WS_EX_MDICHILD", uint32(MDIChild)),
		style.NewBit("WS_EX_TOOLWINDOW", uint32(ToolWindow)),
		style.NewBit("WS_EX_WINDOWEDGE", uint32(WindowEdge)),
		style.NewBit("WS_EX_CLIENTEDGE", uint32(ClientEdge)),
		style.NewBit("WS_EX_CONTEXTHELP", uint32(ContextHelp)),
		style.NewBit("WS_EX_RIGHT", uint32(Right)),
		style.NewValue("WS_EX_LEFT", uint32(Left)),
		style.NewBit("WS_EX_RTLREADING", uint32(RTLReading)),
		style.NewValue("WS_EX_LTRREADING", uint32(LTRReading)),
		style.NewBit("WS_EX_LEFTSCROLLBAR", uint32(LeftScrollbar)),
		style.NewValue("WS_EX_RIGHTSCROLLBAR", uint32(RightScrollbar)),
		style.NewBit("WS_EX_CONTROLPARENT", uint32(ControlParent)),
		style.NewBit("WS_EX_STATICEDGE", uint32(StaticEdge)),
		style.NewBit("WS_EX_APPWINDOW", uint32(AppWindow)),
		style.NewAggregate("WS_EX_OVERLAPPEDWINDOW", uint32(OverlappedWindow), "WS_EX_WINDOWEDGE", "WS_EX_CLIENTEDGE"),
		style.NewAggregate("WS_EX_PALETTEWINDOW", uint32(PaletteWindow), "WS_EX_WINDOWEDGE", "WS_EX_TOOLWINDOW", "WS_EX_TOPMOST"),
		style.NewBit("WS_EX_LAYERED", uint32(Layered)),
		style.NewBit("WS_EX_NOINHERITLAYOUT", uint32(NoInheritLayout)),
		style.NewBit("WS_EX_NOREDIRECTIONBITMAP", uint32(NoRedirectionBitmap)),
		style.NewBit("WS_EX_LAYOUTRTL", uint32(LayoutRTL)),
		style.NewBit("WS_EX_COMPOSITED", uint32(Composited)),
		style.NewBit("WS_EX_NOACTIVATE", uint32(NoActivate)),
	},
}

func (s ExtendedWindowStyle) String() string {
	return Family.Format(uint32(s))
}
