package pbs

import "github.com/elliotmr/winstyle/w32/types/style"

type ProgressBarStyle uint32

const (
	Smooth        ProgressBarStyle = 0x01
	Vertical      ProgressBarStyle = 0x04
	Marquee       ProgressBarStyle = 0x08
	SmoothReverse ProgressBarStyle = 0x10
)

var Family = style.Family{
	Title:  "Progress bar control styles.",
	Prefix: "PBS_",
	Type:   "ProgressBarStyle",
	Flags: []style.Flag{
		style.NewBit("PBS_SMOOTH", uint32(Smooth)),
		style.NewBit("PBS_VERTICAL", uint32(Vertical)),
		style.NewBit("PBS_MARQUEE", uint32(Marquee)),
		style.NewBit("PBS_SMOOTHREVERSE", uint32(SmoothReverse)),
	},
}

func (s ProgressBarStyle) String() string {
	return Family.Format(uint32(s))
}
