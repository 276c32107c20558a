package cbs

import "github.com/elliotmr/winstyle/w32/types/style"

type ComboBoxStyle uint32

const (
	Simple            ComboBoxStyle = 0x0001
	DropDown          ComboBoxStyle = 0x0002
	DropDownList      ComboBoxStyle = 0x0003
	OwnerDrawFixed    ComboBoxStyle = 0x0010
	OwnerDrawVariable ComboBoxStyle = 0x0020
	AutoHScroll       ComboBoxStyle = 0x0040
	OEMConvert        ComboBoxStyle = 0x0080
	Sort              ComboBoxStyle = 0x0100
	HasStrings        ComboBoxStyle = 0x0200
	NoIntegralHeight  ComboBoxStyle = 0x0400
	DisableNoScroll   ComboBoxStyle = 0x0800
	Uppercase         ComboBoxStyle = 0x2000
	Lowercase         ComboBoxStyle = 0x4000
)

var Family = style.Family{
	Title:  "Combo box styles.",
	Prefix: "CBS_",
	Type:   "ComboBoxStyle",
	Flags: []style.Flag{
		style.NewBit("CBS_SIMPLE", uint32(Simple)),
		style.NewBit("CBS_DROPDOWN", uint32(DropDown)),
		style.NewBit("CBS_DROPDOWNLIST", uint32(DropDownList)),
		style.NewBit("CBS_OWNERDRAWFIXED", uint32(OwnerDrawFixed)),
		style.NewBit("CBS_OWNERDRAWVARIABLE", uint32(OwnerDrawVariable)),
		style.NewBit("CBS_AUTOHSCROLL", uint32(AutoHScroll)),
		style.NewBit("CBS_OEMCONVERT", uint32(OEMConvert)),
		style.NewBit("CBS_SORT", uint32(Sort)),
		style.NewBit("CBS_HASSTRINGS", uint32(HasStrings)),
		style.NewBit("CBS_NOINTEGRALHEIGHT", uint32(NoIntegralHeight)),
		style.NewBit("CBS_DISABLENOSCROLL", uint32(DisableNoScroll)),
		style.NewBit("CBS_UPPERCASE", uint32(Uppercase)),
		style.NewBit("CBS_LOWERCASE", uint32(Lowercase)),
	},
}

func (s ComboBoxStyle) String() string {
	return Family.Format(uint32(s))
}
