package cbesex

import "github.com/elliotmr/winstyle/w32/types/style"

// ComboBoxExStyle is set with CBEM_SETEXTENDEDSTYLE, not at creation.
type ComboBoxExStyle uint32

const (
	NoEditImage       ComboBoxExStyle = 0x00000001
	NoEditImageIndent ComboBoxExStyle = 0x00000002
	PathWordBreakProc ComboBoxExStyle = 0x00000004
	NoSizeLimit       ComboBoxExStyle = 0x00000008
	CaseSensitive     ComboBoxExStyle = 0x00000010
	TextEndEllipsis   ComboBoxExStyle = 0x00000020
)

var Family = style.Family{
	Title:  "ComboBoxEx control extended styles.",
	Prefix: "CBES_EX_",
	Type:   "ComboBoxExStyle",
	Flags: []style.Flag{
		style.NewBit("CBES_EX_NOEDITIMAGE", uint32(NoEditImage)),
		style.NewBit("CBES_EX_NOEDITIMAGEINDENT", uint32(NoEditImageIndent)),
		style.NewBit("CBES_EX_PATHWORDBREAKPROC", uint32(PathWordBreakProc)),
		style.NewBit("CBES_EX_NOSIZELIMIT", uint32(NoSizeLimit)),
		style.NewBit("CBES_EX_CASESENSITIVE", uint32(CaseSensitive)),
		style.NewBit("CBES_EX_TEXTENDELLIPSIS", uint32(TextEndEllipsis)),
	},
}

func (s ComboBoxExStyle) String() string {
	return Family.Format(uint32(s))
}
