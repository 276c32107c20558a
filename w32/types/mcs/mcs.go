package mcs

import "github.com/elliotmr/winstyle/w32/types/style"

type MonthCalendarStyle uint32

const (
	DayState         MonthCalendarStyle = 0x0001
	MultiSelect      MonthCalendarStyle = 0x0002
	WeekNumbers      MonthCalendarStyle = 0x0004
	NoTodayCircle    MonthCalendarStyle = 0x0008
	NoToday          MonthCalendarStyle = 0x0010
	NoTrailingDates  MonthCalendarStyle = 0x0040
	ShortDaysOfWeek  MonthCalendarStyle = 0x0080
	NoSelChangeOnNav MonthCalendarStyle = 0x0100
)

var Family = style.Family{
	Title:  "Month calendar control styles.",
	Prefix: "MCS_",
	Type:   "MonthCalendarStyle",
	Flags: []style.Flag{
		style.NewBit("MCS_DAYSTATE", uint32(DayState)),
		style.NewBit("MCS_MULTISELECT", uint32(MultiSelect)),
		style.NewBit("MCS_WEEKNUMBERS", uint32(WeekNumbers)),
		style.NewBit("MCS_NOTODAYCIRCLE", uint32(NoTodayCircle)),
		style.NewBit("MCS_NOTODAY", uint32(NoToday)),
		style.NewBit("MCS_NOTRAILINGDATES", uint32(NoTrailingDates)),
		style.NewBit("MCS_SHORTDAYSOFWEEK", uint32(ShortDaysOfWeek)),
		style.NewBit("MCS_NOSELCHANGEONNAV", uint32(NoSelChangeOnNav)),
	},
}

func (s MonthCalendarStyle) String() string {
	return Family.Format(uint32(s))
}
