package palettepicker

import "slices"

// DefaultCapacity is the number of slots in a palette when none is given.
const DefaultCapacity = 8

// Palette is a fixed-capacity most-recently-used list of entries.
// Index 0 always holds the newest entry.
type Palette struct {
	entries  []Entry
	capacity int
}

// Slot is one position of the palette display. Empty slots render as the
// placeholder: no text, placeholder background.
type Slot struct {
	Entry
	Empty bool
}

func NewPalette(capacity int) *Palette {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Palette{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Insert puts e at the front. When the palette is full the oldest entry falls
// off the tail.
func (p *Palette) Insert(e Entry) {
	if len(p.entries) < p.capacity {
		p.entries = append(p.entries, Entry{})
	}
	// copy is overlap-safe, so the shift moves every kept entry exactly once.
	copy(p.entries[1:], p.entries[:len(p.entries)-1])
	p.entries[0] = e
}

func (p *Palette) Reset() {
	clear(p.entries)
	p.entries = p.entries[:0]
}

// Entries returns a snapshot, most recent first.
func (p *Palette) Entries() []Entry {
	return slices.Clone(p.entries)
}

func (p *Palette) Size() int { return len(p.entries) }

func (p *Palette) Cap() int { return p.capacity }

func (p *Palette) Latest() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}
	return p.entries[0], true
}

// Slots returns exactly Cap() slots for display.
func (p *Palette) Slots() []Slot {
	slots := make([]Slot, p.capacity)
	for i := range slots {
		if i < len(p.entries) {
			slots[i] = Slot{Entry: p.entries[i]}
		} else {
			slots[i] = Slot{Empty: true}
		}
	}
	return slots
}
