package ss

import "github.com/elliotmr/winstyle/w32/types/style"

type StaticStyle uint32

const (
	Left            StaticStyle = 0x00000000
	Center          StaticStyle = 0x00000001
	Right           StaticStyle = 0x00000002
	Icon            StaticStyle = 0x00000003
	BlackRect       StaticStyle = 0x00000004
	GrayRect        StaticStyle = 0x00000005
	WhiteRect       StaticStyle = 0x00000006
	BlackFrame      StaticStyle = 0x00000007
	GrayFrame       StaticStyle = 0x00000008
	WhiteFrame      StaticStyle = 0x00000009
	UserItem        StaticStyle = 0x0000000A
	Simple          StaticStyle = 0x0000000B
	LeftNoWordWrap  StaticStyle = 0x0000000C
	OwnerDraw       StaticStyle = 0x0000000D
	Bitmap          StaticStyle = 0x0000000E
	EnhMetaFile     StaticStyle = 0x0000000F
	EtchedHorz      StaticStyle = 0x00000010
	EtchedVert      StaticStyle = 0x00000011
	EtchedFrame     StaticStyle = 0x00000012
	TypeMask        StaticStyle = 0x0000001F
	RealSizeControl StaticStyle = 0x00000040
	NoPrefix        StaticStyle = 0x00000080
	Notify          StaticStyle = 0x00000100
	CenterImage     StaticStyle = 0x00000200
	RightJust       StaticStyle = 0x00000400
	RealSizeImage   StaticStyle = 0x00000800
	Sunken          StaticStyle = 0x00001000
	EditControl     StaticStyle = 0x00002000
	EndEllipsis     StaticStyle = 0x00004000
	PathEllipsis    StaticStyle = 0x00008000
	WordEllipsis    StaticStyle = 0x0000C000
	EllipsisMask    StaticStyle = 0x0000C000
)

var Family = style.Family{
	Title:  "Static control styles.",
	Prefix: "SS_",
	Type:   "StaticStyle",
	Flags: []style.Flag{
		style.NewSelector("SS_LEFT", uint32(Left), "SS_TYPEMASK"),
		style.NewSelector("SS_CENTER", uint32(Center), "SS_TYPEMASK"),
		style.NewSelector("SS_RIGHT", uint32(Right), "SS_TYPEMASK"),
		style.NewSelector("SS_ICON", uint32(Icon), "SS_TYPEMASK"),
		style.NewSelector("SS_BLACKRECT", uint32(BlackRect), "SS_TYPEMASK"),
		style.NewSelector("SS_GRAYRECT", uint32(GrayRect), "SS_TYPEMASK"),
		style.NewSelector("SS_WHITERECT", uint32(WhiteRect), "SS_TYPEMASK"),
		style.NewSelector("SS_BLACKFRAME", uint32(BlackFrame), "SS_TYPEMASK"),
		style.NewSelector("SS_GRAYFRAME", uint32(GrayFrame), "SS_TYPEMASK"),
		style.NewSelector("SS_WHITEFRAME", uint32(WhiteFrame), "SS_TYPEMASK"),
		style.NewSelector("SS_USERITEM", uint32(UserItem), "SS_TYPEMASK"),
		style.NewSelector("SS_SIMPLE", uint32(Simple), "SS_TYPEMASK"),
		style.NewSelector("SS_LEFTNOWORDWRAP", uint32(LeftNoWordWrap), "SS_TYPEMASK"),
		style.NewSelector("SS_OWNERDRAW", uint32(OwnerDraw), "SS_TYPEMASK"),
		style.NewSelector("SS_BITMAP", uint32(Bitmap), "SS_TYPEMASK"),
		style.NewSelector("SS_ENHMETAFILE", uint32(EnhMetaFile), "SS_TYPEMASK"),
		style.NewSelector("SS_ETCHEDHORZ", uint32(EtchedHorz), "SS_TYPEMASK"),
		style.NewSelector("SS_ETCHEDVERT", uint32(EtchedVert), "SS_TYPEMASK"),
		style.NewSelector("SS_ETCHEDFRAME", uint32(EtchedFrame), "SS_TYPEMASK"),
		style.NewMask("SS_TYPEMASK", uint32(TypeMask)),
		style.NewBit("SS_REALSIZECONTROL", uint32(RealSizeControl)),
		style.NewBit("SS_NOPREFIX", uint32(NoPrefix)),
		style.NewBit("SS_NOTIFY", uint32(Notify)),
		style.NewBit("SS_CENTERIMAGE", uint32(CenterImage)),
		style.NewBit("SS_RIGHTJUST", uint32(RightJust)),
		style.NewBit("SS_REALSIZEIMAGE", uint32(RealSizeImage)),
		style.NewBit("SS_SUNKEN", uint32(Sunken)),
		style.NewBit("SS_EDITCONTROL", uint32(EditControl)),
		style.NewSelector("SS_ENDELLIPSIS", uint32(EndEllipsis), "SS_ELLIPSISMASK"),
		style.NewSelector("SS_PATHELLIPSIS", uint32(PathEllipsis), "SS_ELLIPSISMASK"),
		style.NewSelector("SS_WORDELLIPSIS", uint32(WordEllipsis), "SS_ELLIPSISMASK"),
		style.NewMask("SS_ELLIPSISMASK", uint32(EllipsisMask)),
	},
}

// Type extracts the static control type selector.
func (s StaticStyle) Type() StaticStyle {
	return s & TypeMask
}

// Ellipsis extracts the ellipsis selector.
func (s StaticStyle) Ellipsis() StaticStyle {
	return s & EllipsisMask
}

func (s StaticStyle) String() string {
	return Family.Format(uint32(s))
}
