package vars

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntypedRoundTrip(t *testing.T) {
	p := Point{1: true, 2: false, 5: true}
	up := p.Untyped()
	assert.True(t, up.Ones.Has(1))
	assert.True(t, up.Zeros.Has(2))
	if diff := cmp.Diff(p, up.Point()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeUntypedConflict(t *testing.T) {
	_, err := MakeUntyped([]ID{1, 2}, []ID{2, 3})
	assert.ErrorIs(t, err, ErrConflictingAssignment)

	up, err := MakeUntyped([]ID{1}, []ID{2})
	require.NoError(t, err)
	_, err = up.Fix(1, true)
	assert.ErrorIs(t, err, ErrConflictingAssignment)
	up2, err := up.Fix(1, false)
	require.NoError(t, err)
	v, fixed := up2.Value(1)
	assert.True(t, fixed)
	assert.False(t, v)
}

func TestFixIsPersistent(t *testing.T) {
	up, err := MakeUntyped(nil, nil)
	require.NoError(t, err)
	assert.True(t, up.Empty())
	up2, err := up.Fix(4, true)
	require.NoError(t, err)
	assert.True(t, up.Empty(), "Fix must not mutate the receiver")
	assert.False(t, up2.Empty())
}
