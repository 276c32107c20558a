package ds

import "github.com/elliotmr/winstyle/w32/types/style"

type DialogStyle uint32

// Dialog style constants
const (
	AbsAlign      DialogStyle = 0x01
	SysModal      DialogStyle = 0x02
	LocalEdit     DialogStyle = 0x20
	SetFont       DialogStyle = 0x40
	ModalFrame    DialogStyle = 0x80
	NoIdleMsg     DialogStyle = 0x100
	SetForeground DialogStyle = 0x200

	ThreeDLook   DialogStyle = 0x0004
	FixedSys     DialogStyle = 0x0008
	NoFailCreate DialogStyle = 0x0010
	Control      DialogStyle = 0x0400
	Center       DialogStyle = 0x0800
	CenterMouse  DialogStyle = 0x1000
	ContextHelp  DialogStyle = 0x2000

	ShellFont = SetFont | FixedSys
)

var Family = style.Family{
	Title:  "Dialog styles.",
	Prefix: "DS_",
	Type:   "DialogStyle",
	Flags: []style.Flag{
		style.NewBit("DS_ABSALIGN", uint32(AbsAlign)),
		style.NewBit("DS_SYSMODAL", uint32(SysModal)),
		style.NewBit("DS_LOCALEDIT", uint32(LocalEdit)),
		style.NewBit("DS_SETFONT", uint32(SetFont)),
		style.NewBit("DS_MODALFRAME", uint32(ModalFrame)),
		style.NewBit("DS_NOIDLEMSG", uint32(NoIdleMsg)),
		style.NewBit("DS_SETFOREGROUND", uint32(SetForeground)),
		style.NewBit("DS_3DLOOK", uint32(ThreeDLook)),
		style.NewBit("DS_FIXEDSYS", uint32(FixedSys)),
		style.NewBit("DS_NOFAILCREATE", uint32(NoFailCreate)),
		style.NewBit("DS_CONTROL", uint32(Control)),
		style.NewBit("DS_CENTER", uint32(Center)),
		style.NewBit("DS_CENTERMOUSE", uint32(CenterMouse)),
		style.NewBit("DS_CONTEXTHELP", uint32(ContextHelp)),
		style.NewAggregate("DS_SHELLFONT", uint32(ShellFont), "DS_SETFONT", "DS_FIXEDSYS"),
	},
}

func (s DialogStyle) String() string {
	return Family.Format(uint32(s))
}
