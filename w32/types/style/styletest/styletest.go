// Package styletest holds assertions shared by the family packages' tests.
package styletest

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotmr/winstyle/w32/types/style"
)

// CheckValues asserts that the family holds exactly the names in want, each
// with the listed literal value.
func CheckValues(t *testing.T, f *style.Family, want map[string]uint32) {
	t.Helper()
	got := f.Names()
	sort.Strings(got)
	exp := make([]string, 0, len(want))
	for n := range want {
		exp = append(exp, n)
	}
	sort.Strings(exp)
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("%s names mismatch (-want +got):\n%s", f.Prefix, diff)
	}
	for _, fl := range f.Flags {
		if v, ok := want[fl.Name]; ok {
			assert.Equalf(t, v, fl.Value, "%s = 0x%08X, want 0x%08X", fl.Name, fl.Value, v)
		}
	}
}

// CheckFamily runs Validate and the per-kind properties directly, so a
// broken check in Validate cannot hide a broken table.
func CheckFamily(t *testing.T, f *style.Family) {
	t.Helper()
	require.NoError(t, f.Validate())
	for _, fl := range f.Flags {
		switch fl.Kind {
		case style.Aggregate:
			v, err := f.Combine(fl.Of...)
			require.NoError(t, err)
			assert.Equalf(t, v, fl.Value, "aggregate %s", fl.Name)
		case style.Alias:
			orig, err := f.Combine(fl.Of[0])
			require.NoError(t, err)
			assert.Equalf(t, orig, fl.Value, "alias %s of %s", fl.Name, fl.Of[0])
		case style.Selector:
			mask, ok := f.Lookup(fl.Of[0])
			require.Truef(t, ok, "mask %s of %s", fl.Of[0], fl.Name)
			assert.Equalf(t, fl.Value, mask.Value&fl.Value, "%s & %s", mask.Name, fl.Name)
		}
	}
}

// CheckRoundTrip asserts that Parse(Format(v)) == v for every flag value.
func CheckRoundTrip(t *testing.T, f *style.Family) {
	t.Helper()
	for _, fl := range f.Flags {
		s := f.Format(fl.Value)
		v, err := f.Parse(s)
		if assert.NoErrorf(t, err, "parse %q", s) {
			assert.Equalf(t, fl.Value, v, "%s formatted as %q", fl.Name, s)
		}
	}
}
