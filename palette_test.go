package palettepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryN(n int) Entry {
	return NewEntry(Sample{R: uint8(n), G: uint8(n * 3), B: uint8(255 - n)})
}

func TestPaletteInsertOrder(t *testing.T) {
	p := NewPalette(8)
	c1, c2, c3 := entryN(1), entryN(2), entryN(3)
	p.Insert(c1)
	p.Insert(c2)
	p.Insert(c3)

	assert.Equal(t, []Entry{c3, c2, c1}, p.Entries())
	assert.Equal(t, 3, p.Size())
	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, c3, latest)
}

func TestPaletteEviction(t *testing.T) {
	p := NewPalette(8)
	for i := 1; i <= 9; i++ {
		before := p.Size()
		p.Insert(entryN(i))
		require.Equal(t, min(8, before+1), p.Size())
	}

	got := p.Entries()
	require.Len(t, got, 8)
	assert.Equal(t, entryN(9), got[0])
	assert.NotContains(t, got, entryN(1))
	for i, e := range got {
		assert.Equal(t, entryN(9-i), e)
	}
}

func TestPaletteEvictsOnlyOldestWhenFull(t *testing.T) {
	p := NewPalette(3)
	for i := 1; i <= 20; i++ {
		p.Insert(entryN(i))
		got := p.Entries()
		want := make([]Entry, 0, 3)
		for j := i; j > 0 && len(want) < 3; j-- {
			want = append(want, entryN(j))
		}
		require.Equal(t, want, got, "after insert %d", i)
	}
}

func TestPaletteReset(t *testing.T) {
	p := NewPalette(4)
	p.Insert(entryN(1))
	p.Insert(entryN(2))

	p.Reset()
	assert.Equal(t, 0, p.Size())
	assert.Empty(t, p.Entries())
	p.Reset()
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 4, p.Cap())

	_, ok := p.Latest()
	assert.False(t, ok)

	p.Insert(entryN(5))
	assert.Equal(t, []Entry{entryN(5)}, p.Entries())
}

func TestPaletteDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewPalette(0).Cap())
	assert.Equal(t, DefaultCapacity, NewPalette(-3).Cap())
}

func TestPaletteEntriesIsSnapshot(t *testing.T) {
	p := NewPalette(2)
	p.Insert(entryN(1))
	snap := p.Entries()
	p.Insert(entryN(2))
	p.Insert(entryN(3))
	assert.Equal(t, []Entry{entryN(1)}, snap)

	snap[0] = entryN(42)
	assert.Equal(t, []Entry{entryN(3), entryN(2)}, p.Entries())
}

func TestPaletteSlots(t *testing.T) {
	p := NewPalette(4)
	p.Insert(entryN(1))
	p.Insert(entryN(2))

	slots := p.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, Slot{Entry: entryN(2)}, slots[0])
	assert.Equal(t, Slot{Entry: entryN(1)}, slots[1])
	for _, s := range slots[2:] {
		assert.True(t, s.Empty)
		assert.Empty(t, s.Hex)
	}
}
