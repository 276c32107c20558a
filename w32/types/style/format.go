package style

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Format renders v as a '|' separated list of flag names. Selectors are
// decoded through their masks first, then the widest bits are taken, and any
// remaining bits are printed in hex. Aliases and aggregates are never used.
func (f *Family) Format(v uint32) string {
	for _, fl := range f.Flags {
		if fl.Kind == Value && fl.Value == v && v != 0 {
			return fl.Name
		}
	}
	if v == 0 {
		for _, fl := range f.Flags {
			if fl.Value == 0 && (fl.Kind == Value || fl.Kind == Selector || fl.Kind == Bit) {
				return fl.Name
			}
		}
		return "0"
	}

	var parts []string
	rest := v
	for _, m := range f.Flags {
		if m.Kind != Mask {
			continue
		}
		sels := f.Selectors(m.Name)
		if len(sels) == 0 {
			continue
		}
		field := v & m.Value
		if field == 0 {
			continue
		}
		for _, s := range sels {
			if s.Value == field {
				parts = append(parts, s.Name)
				rest &^= m.Value
				break
			}
		}
	}

	var cands []Flag
	for _, fl := range f.Flags {
		if fl.Kind == Bit && fl.Value != 0 {
			cands = append(cands, fl)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return bits.OnesCount32(cands[i].Value) > bits.OnesCount32(cands[j].Value)
	})
	for _, fl := range cands {
		if rest&fl.Value == fl.Value {
			parts = append(parts, fl.Name)
			rest &^= fl.Value
		}
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", rest))
	}
	return strings.Join(parts, "|")
}

// Parse is the inverse of Format. Each '|' separated term is a flag name of
// the family or its dependencies (the family prefix may be omitted, case is
// ignored) or a numeric literal in any base strconv understands.
func (f *Family) Parse(s string) (uint32, error) {
	var v uint32
	for _, term := range strings.Split(s, "|") {
		term = strings.TrimSpace(term)
		if term == "" {
			return 0, errors.Errorf("empty term in %q", s)
		}
		if n, err := strconv.ParseUint(term, 0, 32); err == nil {
			v |= uint32(n)
			continue
		}
		fl, ok := f.match(term)
		if !ok {
			return 0, errors.Wrapf(&UnknownFlagError{Family: f.Prefix, Name: term}, "parsing %q", s)
		}
		v |= fl.Value
	}
	return v, nil
}

func (f *Family) match(term string) (Flag, bool) {
	up := strings.ToUpper(term)
	if fl, ok := f.resolve(up); ok {
		return fl, true
	}
	return f.resolve(f.Prefix + up)
}
