package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotmr/winstyle/w32/types/lbs"
	"github.com/elliotmr/winstyle/w32/types/style"
	"github.com/elliotmr/winstyle/w32/types/ws"
	"github.com/elliotmr/winstyle/w32/types/wsex"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestFamiliesUnique(t *testing.T) {
	prefixes := map[string]bool{}
	names := map[string]string{}
	total := 0
	for _, f := range Families() {
		assert.False(t, prefixes[f.Prefix], "duplicate prefix %s", f.Prefix)
		prefixes[f.Prefix] = true
		for _, fl := range f.Flags {
			if other, ok := names[fl.Name]; ok {
				t.Errorf("%s declared in both %s and %s", fl.Name, other, f.Prefix)
			}
			names[fl.Name] = f.Prefix
			total++
		}
	}
	// 298 resource script constants plus the window class styles.
	assert.Equal(t, 313, total)
}

func TestFamiliesCopy(t *testing.T) {
	fs := Families()
	fs[0] = nil
	assert.NotNil(t, Families()[0])
}

func TestFamilyByPrefix(t *testing.T) {
	f, ok := Family("WS_EX_")
	require.True(t, ok)
	assert.Same(t, &wsex.Family, f)
	_, ok = Family("XX_")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	fl, f, err := Lookup("WS_EX_TOPMOST")
	require.NoError(t, err)
	assert.Same(t, &wsex.Family, f)
	assert.Equal(t, uint32(wsex.TopMost), fl.Value)

	fl, f, err = Lookup("WS_POPUPWINDOW")
	require.NoError(t, err)
	assert.Same(t, &ws.Family, f)
	assert.Equal(t, style.Aggregate, fl.Kind)
	assert.Equal(t, uint32(ws.PopupWindow), fl.Value)

	fl, _, err = Lookup("LBS_STANDARD")
	require.NoError(t, err)
	assert.Equal(t, uint32(lbs.Standard), fl.Value)

	_, f, err = Lookup("WS_EX_NOPE")
	var uerr *style.UnknownFlagError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "WS_EX_", uerr.Family)
	assert.Same(t, &wsex.Family, f)

	_, _, err = Lookup("ZZ_TOP")
	assert.Error(t, err)
}

func TestAliasesResolve(t *testing.T) {
	for _, f := range Families() {
		for _, fl := range f.Flags {
			if fl.Kind != style.Alias {
				continue
			}
			orig, _, err := Lookup(fl.Of[0])
			require.NoError(t, err, fl.Name)
			assert.Equal(t, orig.Value, fl.Value, "%s aliases %s", fl.Name, orig.Name)
		}
	}
}
