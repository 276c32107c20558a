package style

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// UnknownFlagError is returned when a name does not resolve in a family.
type UnknownFlagError struct {
	Family string
	Name   string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q in family %s", e.Name, e.Family)
}

// ValidationError collects every problem Validate found in a family.
type ValidationError struct {
	Family   string
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("family %s: %s", e.Family, strings.Join(msgs, "; "))
}

// Validate checks the relationships the table declares:
//   - names are unique and carry the family prefix
//   - an aggregate equals the OR of its operands
//   - an alias equals the flag it aliases
//   - a selector fits inside its mask
//   - a mask overlaps no flag it does not govern, unless that flag lists
//     the mask as a known overlap
//   - no two non-zero flags share a value unless one is an alias, an
//     aggregate or a mask
func (f *Family) Validate() error {
	var problems []error
	add := func(err error) { problems = append(problems, err) }

	seen := make(map[string]bool, len(f.Flags))
	for _, fl := range f.Flags {
		if seen[fl.Name] {
			add(errors.Errorf("%s: duplicate name", fl.Name))
		}
		seen[fl.Name] = true
		if !strings.HasPrefix(fl.Name, f.Prefix) {
			add(errors.Errorf("%s: missing prefix %s", fl.Name, f.Prefix))
		}
	}

	for _, fl := range f.Flags {
		switch fl.Kind {
		case Aggregate:
			if len(fl.Of) == 0 {
				add(errors.Errorf("%s: aggregate without operands", fl.Name))
				continue
			}
			v, err := f.Combine(fl.Of...)
			if err != nil {
				add(errors.Wrapf(err, "%s", fl.Name))
				continue
			}
			if v != fl.Value {
				add(errors.Errorf("%s: 0x%08X is not the OR of %s (0x%08X)",
					fl.Name, fl.Value, strings.Join(fl.Of, "|"), v))
			}
		case Alias:
			if len(fl.Of) != 1 {
				add(errors.Errorf("%s: alias must name exactly one flag", fl.Name))
				continue
			}
			orig, ok := f.resolve(fl.Of[0])
			if !ok {
				add(errors.Wrapf(&UnknownFlagError{Family: f.Prefix, Name: fl.Of[0]}, "%s", fl.Name))
				continue
			}
			if orig.Value != fl.Value {
				add(errors.Errorf("%s: 0x%08X differs from aliased %s (0x%08X)",
					fl.Name, fl.Value, orig.Name, orig.Value))
			}
		case Selector:
			if len(fl.Of) != 1 {
				add(errors.Errorf("%s: selector must name exactly one mask", fl.Name))
				continue
			}
			mask, ok := f.Lookup(fl.Of[0])
			if !ok || mask.Kind != Mask {
				add(errors.Errorf("%s: %s is not a mask of %s", fl.Name, fl.Of[0], f.Prefix))
				continue
			}
			if fl.Value&mask.Value != fl.Value {
				add(errors.Errorf("%s: 0x%08X escapes %s (0x%08X)",
					fl.Name, fl.Value, mask.Name, mask.Value))
			}
		case Mask:
			problems = append(problems, f.validateMask(fl)...)
		}
	}

	problems = append(problems, f.validateCollisions()...)

	if len(problems) > 0 {
		return &ValidationError{Family: f.Prefix, Problems: problems}
	}
	return nil
}

// governed returns every flag name a mask is responsible for, following
// nested masks.
func (f *Family) governed(mask Flag) map[string]bool {
	out := map[string]bool{mask.Name: true}
	var walk func(m Flag)
	walk = func(m Flag) {
		names := append([]string{}, m.Of...)
		for _, s := range f.Selectors(m.Name) {
			names = append(names, s.Name)
		}
		for _, n := range names {
			if out[n] {
				continue
			}
			out[n] = true
			if fl, ok := f.Lookup(n); ok && fl.Kind == Mask {
				walk(fl)
			}
		}
	}
	walk(mask)
	return out
}

func (f *Family) validateMask(mask Flag) []error {
	var problems []error
	gov := f.governed(mask)
	for _, n := range mask.Of {
		fl, ok := f.Lookup(n)
		if !ok {
			problems = append(problems, errors.Wrapf(&UnknownFlagError{Family: f.Prefix, Name: n}, "%s", mask.Name))
			continue
		}
		if fl.Value&mask.Value != fl.Value {
			problems = append(problems, errors.Errorf("%s: governed %s (0x%08X) escapes the mask",
				mask.Name, fl.Name, fl.Value))
		}
	}
	for _, fl := range f.Flags {
		if gov[fl.Name] || fl.Value&mask.Value == 0 {
			continue
		}
		switch fl.Kind {
		case Alias, Aggregate, Value:
			continue
		}
		if contains(fl.Of, mask.Name) {
			continue
		}
		problems = append(problems, errors.Errorf("%s: overlaps independent flag %s (0x%08X)",
			mask.Name, fl.Name, fl.Value))
	}
	return problems
}

func (f *Family) validateCollisions() []error {
	var problems []error
	for i, a := range f.Flags {
		if a.Value == 0 || exempt(a) {
			continue
		}
		for _, b := range f.Flags[i+1:] {
			if b.Value != a.Value || exempt(b) {
				continue
			}
			problems = append(problems, errors.Errorf("%s and %s share 0x%08X without an alias",
				a.Name, b.Name, a.Value))
		}
	}
	return problems
}

func exempt(fl Flag) bool {
	return fl.Kind == Alias || fl.Kind == Aggregate || fl.Kind == Mask
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
