package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PointersStableAcrossChunks(t *testing.T) {
	tab := NewTable[int](1000)
	var first *int
	for i := 0; i < 1000; i++ {
		p, err := tab.Alloc()
		require.NoError(t, err)
		*p = i
		if i == 0 {
			first = p
		}
	}
	// Cell 0 must still hold its value after later chunk allocations.
	assert.Equal(t, 0, *first)
	assert.Equal(t, 1000, tab.Len())
}

func TestTable_ExhaustionReturnsErr(t *testing.T) {
	tab := NewTable[int](2)
	_, err := tab.Alloc()
	require.NoError(t, err)
	_, err = tab.Alloc()
	require.NoError(t, err)
	_, err = tab.Alloc()
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestInterner_DeduplicatesAndChargesOnce(t *testing.T) {
	in := NewInterner(16)
	a, err := in.Intern("filesize")
	require.NoError(t, err)
	b, err := in.Intern("filesize")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, len("filesize"), in.Used())
}

func TestInterner_BudgetExceeded(t *testing.T) {
	in := NewInterner(4)
	_, err := in.Intern("ok")
	require.NoError(t, err)
	_, err = in.Intern("too long")
	assert.True(t, errors.Is(err, ErrExhausted))
}
