// Package rt holds resource type identifiers usable in resource scripts.
package rt

import "github.com/elliotmr/winstyle/w32/types/style"

type ResourceType uint32

const Manifest ResourceType = 24

var Family = style.Family{
	Title:  "Constants to be included in resource scripts, if needed.",
	Prefix: "RT_",
	Type:   "ResourceType",
	Flags: []style.Flag{
		style.NewValue("RT_MANIFEST", uint32(Manifest)),
	},
}

func (r ResourceType) String() string {
	return Family.Format(uint32(r))
}
