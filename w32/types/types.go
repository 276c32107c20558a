// Package types gathers every style family in the order a resource script
// header lists them.
package types

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/elliotmr/winstyle/w32/types/bs"
	"github.com/elliotmr/winstyle/w32/types/cbesex"
	"github.com/elliotmr/winstyle/w32/types/cbs"
	"github.com/elliotmr/winstyle/w32/types/cs"
	"github.com/elliotmr/winstyle/w32/types/ds"
	"github.com/elliotmr/winstyle/w32/types/dts"
	"github.com/elliotmr/winstyle/w32/types/es"
	"github.com/elliotmr/winstyle/w32/types/hds"
	"github.com/elliotmr/winstyle/w32/types/lbs"
	"github.com/elliotmr/winstyle/w32/types/lvs"
	"github.com/elliotmr/winstyle/w32/types/lvsex"
	"github.com/elliotmr/winstyle/w32/types/mcs"
	"github.com/elliotmr/winstyle/w32/types/pbs"
	"github.com/elliotmr/winstyle/w32/types/rbs"
	"github.com/elliotmr/winstyle/w32/types/rt"
	"github.com/elliotmr/winstyle/w32/types/ss"
	"github.com/elliotmr/winstyle/w32/types/style"
	"github.com/elliotmr/winstyle/w32/types/tvs"
	"github.com/elliotmr/winstyle/w32/types/tvsex"
	"github.com/elliotmr/winstyle/w32/types/ws"
	"github.com/elliotmr/winstyle/w32/types/wsex"
)

var families = []*style.Family{
	&rt.Family,
	&ws.Family,
	&wsex.Family,
	&ds.Family,
	&bs.Family,
	&cbs.Family,
	&cbesex.Family,
	&dts.Family,
	&es.Family,
	&hds.Family,
	&lbs.Family,
	&lvs.Family,
	&lvsex.Family,
	&mcs.Family,
	&pbs.Family,
	&rbs.Family,
	&ss.Family,
	&tvs.Family,
	&tvsex.Family,
	&cs.Family,
}

// Families returns all families. The slice is a copy; the families are not.
func Families() []*style.Family {
	return append([]*style.Family(nil), families...)
}

// Family finds a family by its exact prefix, e.g. "WS_EX_".
func Family(prefix string) (*style.Family, bool) {
	for _, f := range families {
		if f.Prefix == prefix {
			return f, true
		}
	}
	return nil, false
}

// Lookup resolves a full flag name across all families. The longest
// matching prefix wins, so WS_EX_TOPMOST is never searched for in WS_.
func Lookup(name string) (style.Flag, *style.Family, error) {
	var best *style.Family
	for _, f := range families {
		if strings.HasPrefix(name, f.Prefix) && (best == nil || len(f.Prefix) > len(best.Prefix)) {
			best = f
		}
	}
	if best == nil {
		return style.Flag{}, nil, errors.Errorf("no family for %q", name)
	}
	fl, ok := best.Lookup(name)
	if !ok {
		return style.Flag{}, best, &style.UnknownFlagError{Family: best.Prefix, Name: name}
	}
	return fl, best, nil
}

// Validate checks every family and returns the first failure, or nil.
func Validate() error {
	for _, f := range families {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
