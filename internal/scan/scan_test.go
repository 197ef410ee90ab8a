package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAdd(t *testing.T) {
	l := Line{Quantity: 2}

	require.NoError(t, l.Add("A1"))
	assert.ErrorIs(t, l.Add("A1"), ErrDuplicate)
	require.NoError(t, l.Add("B2"))
	assert.True(t, l.Complete())
	assert.Equal(t, 0, l.Remaining())

	assert.ErrorIs(t, l.Add("C3"), ErrOverScan)
}

func TestLineRemove(t *testing.T) {
	l := Line{Quantity: 2, Barcodes: []string{"A1", "B2"}}

	assert.ErrorIs(t, l.Remove(2), ErrBadIndex)
	assert.ErrorIs(t, l.Remove(-1), ErrBadIndex)

	require.NoError(t, l.Remove(0))
	assert.Equal(t, []string{"B2"}, l.Barcodes)
	assert.Equal(t, 1, l.Remaining())
	assert.False(t, l.Complete())

	// freed slot can be rescanned, same code included
	require.NoError(t, l.Add("A1"))
	assert.True(t, l.Complete())
}

func TestSameBarcodeOnDifferentLines(t *testing.T) {
	a := Line{Quantity: 1}
	b := Line{Quantity: 1}
	require.NoError(t, a.Add("X9"))
	require.NoError(t, b.Add("X9"))
}

func TestReady(t *testing.T) {
	lines := []Line{
		{Quantity: 1, Barcodes: []string{"A1"}},
		{Quantity: 2, Barcodes: []string{"B1"}},
	}
	assert.False(t, Ready(lines))

	lines[1].Barcodes = append(lines[1].Barcodes, "B2")
	assert.True(t, Ready(lines))

	assert.True(t, Ready(nil))
}
