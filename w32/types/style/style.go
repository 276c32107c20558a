// Package style describes the families of Win32 style bits declared under
// w32/types. Each family package keeps its values as typed Go constants and
// mirrors them into a Family table, so tooling can enumerate, format, parse
// and validate them without reflection.
package style

// Kind classifies how a flag's value relates to the rest of its family.
type Kind uint8

const (
	// Bit is an independent modifier. It may span more than one bit
	// (WS_CAPTION, BS_CENTER).
	Bit Kind = iota
	// Selector is one of several mutually exclusive values living under a
	// Mask. Of[0] names the mask.
	Selector
	// Mask covers the bits of its selectors. Of lists any further flags it
	// governs besides those selectors.
	Mask
	// Aggregate is the OR of the flags named in Of.
	Aggregate
	// Alias carries the same value as the flag named in Of[0].
	Alias
	// Value is a plain enumerated value or a zero-valued default.
	Value
)

var kindNames = [...]string{
	Bit:       "bit",
	Selector:  "selector",
	Mask:      "mask",
	Aggregate: "aggregate",
	Alias:     "alias",
	Value:     "value",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Flag is a single named entry of a family.
type Flag struct {
	Name  string
	Value uint32
	Kind  Kind
	// Of depends on Kind: operands of an Aggregate, the original of an
	// Alias, the mask of a Selector, flags governed by a Mask. For a Bit it
	// names masks the bit knowingly overlaps.
	Of []string
}

func NewBit(name string, v uint32, overlaps ...string) Flag {
	return Flag{Name: name, Value: v, Kind: Bit, Of: overlaps}
}

func NewSelector(name string, v uint32, mask string) Flag {
	return Flag{Name: name, Value: v, Kind: Selector, Of: []string{mask}}
}

func NewMask(name string, v uint32, governs ...string) Flag {
	return Flag{Name: name, Value: v, Kind: Mask, Of: governs}
}

func NewAggregate(name string, v uint32, operands ...string) Flag {
	return Flag{Name: name, Value: v, Kind: Aggregate, Of: operands}
}

func NewAlias(name string, v uint32, of string) Flag {
	return Flag{Name: name, Value: v, Kind: Alias, Of: []string{of}}
}

func NewValue(name string, v uint32) Flag {
	return Flag{Name: name, Value: v, Kind: Value}
}

// Family is the table of one style prefix, such as WS_ or LVS_EX_.
type Family struct {
	// Title is a human readable heading, used by generated headers.
	Title  string
	Prefix string
	Type   string // Go type name of the family's values
	Flags  []Flag

	// Deps are families whose flags may be named as operands of this
	// family's aggregates (LBS_STANDARD uses WS_VSCROLL).
	Deps []*Family
}

// Lookup finds a flag of the family by its full name.
func (f *Family) Lookup(name string) (Flag, bool) {
	for _, fl := range f.Flags {
		if fl.Name == name {
			return fl, true
		}
	}
	return Flag{}, false
}

// Names lists the family's flag names in declaration order.
func (f *Family) Names() []string {
	names := make([]string, len(f.Flags))
	for i, fl := range f.Flags {
		names[i] = fl.Name
	}
	return names
}

// Selectors returns the selectors living under the named mask.
func (f *Family) Selectors(mask string) []Flag {
	var out []Flag
	for _, fl := range f.Flags {
		if fl.Kind == Selector && len(fl.Of) > 0 && fl.Of[0] == mask {
			out = append(out, fl)
		}
	}
	return out
}

// resolve looks a name up in the family and then in its dependencies.
func (f *Family) resolve(name string) (Flag, bool) {
	if fl, ok := f.Lookup(name); ok {
		return fl, true
	}
	for _, d := range f.Deps {
		if fl, ok := d.Lookup(name); ok {
			return fl, true
		}
	}
	return Flag{}, false
}

// Combine ORs the values of the named flags, which may come from the family
// or from its dependencies.
func (f *Family) Combine(names ...string) (uint32, error) {
	var v uint32
	for _, n := range names {
		fl, ok := f.resolve(n)
		if !ok {
			return 0, &UnknownFlagError{Family: f.Prefix, Name: n}
		}
		v |= fl.Value
	}
	return v, nil
}
