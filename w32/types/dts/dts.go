package dts

import "github.com/elliotmr/winstyle/w32/types/style"

type DateTimePickerStyle uint32

// The date formats share bits with UpDown; TimeFormat includes it.
const (
	UpDown                 DateTimePickerStyle = 0x0001
	ShowNone               DateTimePickerStyle = 0x0002
	ShortDateFormat        DateTimePickerStyle = 0x0000
	LongDateFormat         DateTimePickerStyle = 0x0004
	ShortDateCenturyFormat DateTimePickerStyle = 0x000C
	TimeFormat             DateTimePickerStyle = 0x0009
	AppCanParse            DateTimePickerStyle = 0x0010
	RightAlign             DateTimePickerStyle = 0x0020
)

var Family = style.Family{
	Title:  "Date and time picker control styles.",
	Prefix: "DTS_",
	Type:   "DateTimePickerStyle",
	Flags: []style.Flag{
		style.NewBit("DTS_UPDOWN", uint32(UpDown)),
		style.NewBit("DTS_SHOWNONE", uint32(ShowNone)),
		style.NewValue("DTS_SHORTDATEFORMAT", uint32(ShortDateFormat)),
		style.NewBit("DTS_LONGDATEFORMAT", uint32(LongDateFormat)),
		style.NewBit("DTS_SHORTDATECENTURYFORMAT", uint32(ShortDateCenturyFormat)),
		style.NewBit("DTS_TIMEFORMAT", uint32(TimeFormat)),
		style.NewBit("DTS_APPCANPARSE", uint32(AppCanParse)),
		style.NewBit("DTS_RIGHTALIGN", uint32(RightAlign)),
	},
}

func (s DateTimePickerStyle) String() string {
	return Family.Format(uint32(s))
}
