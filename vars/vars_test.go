package vars

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMemoizes(t *testing.T) {
	p := NewPool()
	a1, err := p.Resolve([]string{"a"}, nil)
	require.NoError(t, err)
	a2, err := p.Resolve([]string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, a1, a2, "same pair must resolve to the same id")
	b, err := p.Resolve([]string{"a"}, []int{0})
	require.NoError(t, err)
	assert.NotEqual(t, a1, b, "distinct index tuples are distinct variables")
	assert.Equal(t, 2, p.NbVars())
}

func TestResolveMonotone(t *testing.T) {
	p := NewPool()
	prev := ID(0)
	for _, name := range []string{"x", "y", "z"} {
		id, err := p.Resolve([]string{name}, nil)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestResolveInvalid(t *testing.T) {
	p := NewPool()
	for _, tc := range []struct {
		names   []string
		indices []int
	}{
		{nil, nil},
		{[]string{""}, nil},
		{[]string{"1abc"}, nil},
		{[]string{"a-b"}, nil},
		{[]string{"a", "b c"}, nil},
		{[]string{"a"}, []int{-1}},
	} {
		_, err := p.Resolve(tc.names, tc.indices)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "names=%v indices=%v", tc.names, tc.indices)
	}
}

func TestResolveConcurrent(t *testing.T) {
	p := NewPool()
	const n = 64
	ids := make([]ID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = p.MustResolve([]string{"shared"}, []int{7})
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		require.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, p.NbVars())
}

func TestOrdering(t *testing.T) {
	p := NewPool()
	// Resolution order is deliberately scrambled: the canonical ordering
	// depends on names and indices only, never on allocation order.
	b := p.MustResolve([]string{"b"}, nil)
	a1 := p.MustResolve([]string{"a"}, []int{1})
	a := p.MustResolve([]string{"a"}, nil)
	a0 := p.MustResolve([]string{"a"}, []int{0})
	ab := p.MustResolve([]string{"a", "b"}, nil)

	assert.True(t, p.Less(a, b))
	assert.True(t, p.Less(a, a0))
	assert.True(t, p.Less(a0, a1))
	assert.True(t, p.Less(a, ab))
	assert.True(t, p.Less(ab, b))
	assert.Zero(t, p.Compare(a, a))
}

func TestVariableString(t *testing.T) {
	p := NewPool()
	id := p.MustResolve([]string{"cpu", "reg"}, []int{3, 0})
	v, ok := p.Var(id)
	require.True(t, ok)
	assert.Equal(t, "cpu.reg[3][0]", v.String())
	assert.Equal(t, "cpu.reg[3][0]", p.Name(id))
	assert.Equal(t, "?99", p.Name(99))
}
