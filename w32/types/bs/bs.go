package bs

import "github.com/elliotmr/winstyle/w32/types/style"

type ButtonStyle uint32

// Button types live in the low nibble, see TypeMask. Bits from LeftText
// upward combine freely with a type.
const (
	PushButton      ButtonStyle = 0x00000000
	DefPushButton   ButtonStyle = 0x00000001
	CheckBox        ButtonStyle = 0x00000002
	AutoCheckBox    ButtonStyle = 0x00000003
	RadioButton     ButtonStyle = 0x00000004
	ThreeState      ButtonStyle = 0x00000005
	AutoThreeState  ButtonStyle = 0x00000006
	GroupBox        ButtonStyle = 0x00000007
	UserButton      ButtonStyle = 0x00000008
	AutoRadioButton ButtonStyle = 0x00000009
	PushBox         ButtonStyle = 0x0000000A
	OwnerDraw       ButtonStyle = 0x0000000B
	TypeMask        ButtonStyle = 0x0000000F
	LeftText        ButtonStyle = 0x00000020
	Text            ButtonStyle = 0x00000000
	Icon            ButtonStyle = 0x00000040
	Bitmap          ButtonStyle = 0x00000080
	Left            ButtonStyle = 0x00000100
	Right           ButtonStyle = 0x00000200
	Center          ButtonStyle = 0x00000300
	Top             ButtonStyle = 0x00000400
	Bottom          ButtonStyle = 0x00000800
	VCenter         ButtonStyle = 0x00000C00
	PushLike        ButtonStyle = 0x00001000
	Multiline       ButtonStyle = 0x00002000
	Notify          ButtonStyle = 0x00004000
	Flat            ButtonStyle = 0x00008000
	RightButton                 = LeftText
)

var Family = style.Family{
	Title:  "Button control styles.",
	Prefix: "BS_",
	Type:   "ButtonStyle",
	Flags: []style.Flag{
		style.NewSelector("BS_PUSHBUTTON", uint32(PushButton), "BS_TYPEMASK"),
		style.NewSelector("BS_DEFPUSHBUTTON", uint32(DefPushButton), "BS_TYPEMASK"),
		style.NewSelector("BS_CHECKBOX", uint32(CheckBox), "BS_TYPEMASK"),
		style.NewSelector("BS_AUTOCHECKBOX", uint32(AutoCheckBox), "BS_TYPEMASK"),
		style.NewSelector("BS_RADIOBUTTON", uint32(RadioButton), "BS_TYPEMASK"),
		style.NewSelector("BS_3STATE", uint32(ThreeState), "BS_TYPEMASK"),
		style.NewSelector("BS_AUTO3STATE", uint32(AutoThreeState), "BS_TYPEMASK"),
		style.NewSelector("BS_GROUPBOX", uint32(GroupBox), "BS_TYPEMASK"),
		style.NewSelector("BS_USERBUTTON", uint32(UserButton), "BS_TYPEMASK"),
		style.NewSelector("BS_AUTORADIOBUTTON", uint32(AutoRadioButton), "BS_TYPEMASK"),
		style.NewSelector("BS_PUSHBOX", uint32(PushBox), "BS_TYPEMASK"),
		style.NewSelector("BS_OWNERDRAW", uint32(OwnerDraw), "BS_TYPEMASK"),
		style.NewMask("BS_TYPEMASK", uint32(TypeMask)),
		style.NewBit("BS_LEFTTEXT", uint32(LeftText)),
		style.NewValue("BS_TEXT", uint32(Text)),
		style.NewBit("BS_ICON", uint32(Icon)),
		style.NewBit("BS_BITMAP", uint32(Bitmap)),
		style.NewBit("BS_LEFT", uint32(Left)),
		style.NewBit("BS_RIGHT", uint32(Right)),
		style.NewBit("BS_CENTER", uint32(Center)),
		style.NewBit("BS_TOP", uint32(Top)),
		style.NewBit("BS_BOTTOM", uint32(Bottom)),
		style.NewBit("BS_VCENTER", uint32(VCenter)),
		style.NewBit("BS_PUSHLIKE", uint32(PushLike)),
		style.NewBit("BS_MULTILINE", uint32(Multiline)),
		style.NewBit("BS_NOTIFY", uint32(Notify)),
		style.NewBit("BS_FLAT", uint32(Flat)),
		style.NewAlias("BS_RIGHTBUTTON", uint32(RightButton), "BS_LEFTTEXT"),
	},
}

// Type extracts the button type selector.
func (s ButtonStyle) Type() ButtonStyle {
	return s & TypeMask
}

func (s ButtonStyle) String() string {
	return Family.Format(uint32(s))
}
