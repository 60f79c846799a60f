package address_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weightedgraph/scoregraph/address"
)

func TestNewAndParts(t *testing.T) {
	a, err := address.New("user", "42")
	require.NoError(t, err)
	require.Equal(t, []string{"user", "42"}, a.Parts())
	require.Equal(t, "user/42", a.String())
}

func TestNewRejectsSeparator(t *testing.T) {
	_, err := address.New("user\x0042")
	require.ErrorIs(t, err, address.ErrEmptyPart)
}

func TestEqualAndLess(t *testing.T) {
	a := address.MustNew("a", "1")
	b := address.MustNew("a", "2")
	c := address.MustNew("a", "1")

	require.True(t, a.Equal(c))
	require.False(t, a.Equal(b))
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestHasPrefix(t *testing.T) {
	full := address.MustNew("user", "42", "repo")
	prefix := address.MustNew("user", "42")
	notPrefix := address.MustNew("user", "4")
	empty := address.Address{}

	require.True(t, full.HasPrefix(prefix))
	require.True(t, full.HasPrefix(full))
	require.True(t, full.HasPrefix(empty))
	require.False(t, full.HasPrefix(notPrefix))
	require.False(t, prefix.HasPrefix(full))
}

func TestSortIsLexicographic(t *testing.T) {
	addrs := []address.Address{
		address.MustNew("b"),
		address.MustNew("a", "2"),
		address.MustNew("a", "1"),
	}
	address.Sort(addrs)
	require.True(t, sort.SliceIsSorted(addrs, func(i, j int) bool {
		return addrs[i].Less(addrs[j])
	}))
	require.Equal(t, "a/1", addrs[0].String())
	require.Equal(t, "a/2", addrs[1].String())
	require.Equal(t, "b", addrs[2].String())
}

func TestSortedCopyDoesNotMutateInput(t *testing.T) {
	in := []address.Address{address.MustNew("b"), address.MustNew("a")}
	out := address.SortedCopy(in)
	require.Equal(t, "b", in[0].String())
	require.Equal(t, "a", out[0].String())
}
