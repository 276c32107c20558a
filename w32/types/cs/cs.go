package cs

import "github.com/elliotmr/winstyle/w32/types/style"

// ClassStyle is the style of a registered window class rather than of a
// window.
type ClassStyle uint32

const (
	VRedraw         ClassStyle = 0x00000001
	HRedraw         ClassStyle = 0x00000002
	KeyCVTWindow    ClassStyle = 0x00000004
	DblClks         ClassStyle = 0x00000008
	OwnDC           ClassStyle = 0x00000020
	ClassDC         ClassStyle = 0x00000040
	ParentDC        ClassStyle = 0x00000080
	NoKeyCVT        ClassStyle = 0x00000100
	NoClose         ClassStyle = 0x00000200
	SaveBits        ClassStyle = 0x00000800
	ByteAlignClient ClassStyle = 0x00001000
	ByteAlignWindow ClassStyle = 0x00002000
	GlobalClass     ClassStyle = 0x00004000
	IME             ClassStyle = 0x00010000
	DropShadow      ClassStyle = 0x00020000
)

var Family = style.Family{
	Title:  "Window class styles.",
	Prefix: "CS_",
	Type:   "ClassStyle",
	Flags: []style.Flag{
		style.NewBit("CS_VREDRAW", uint32(VRedraw)),
		style.NewBit("CS_HREDRAW", uint32(HRedraw)),
		style.NewBit("CS_KEYCVTWINDOW", uint32(KeyCVTWindow)),
		style.NewBit("CS_DBLCLKS", uint32(DblClks)),
		style.NewBit("CS_OWNDC", uint32(OwnDC)),
		style.NewBit("CS_CLASSDC", uint32(ClassDC)),
		style.NewBit("CS_PARENTDC", uint32(ParentDC)),
		style.NewBit("CS_NOKEYCVT", uint32(NoKeyCVT)),
		style.NewBit("CS_NOCLOSE", uint32(NoClose)),
		style.NewBit("CS_SAVEBITS", uint32(SaveBits)),
		style.NewBit("CS_BYTEALIGNCLIENT", uint32(ByteAlignClient)),
		style.NewBit("CS_BYTEALIGNWINDOW", uint32(ByteAlignWindow)),
		style.NewBit("CS_GLOBALCLASS", uint32(GlobalClass)),
		style.NewBit("CS_IME", uint32(IME)),
		style.NewBit("CS_DROPSHADOW", uint32(DropShadow)),
	},
}

func (s ClassStyle) String() string {
	return Family.Format(uint32(s))
}
