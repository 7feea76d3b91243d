/*
Package offset implements positions within a run of text.

Positions come in two flavours which are not interchangeable: byte
offsets index into the UTF-8 encoding of a string, width offsets count
display columns as measured by a ruler. Mixing up the two coordinate
spaces is a classic source of wrapping bugs, therefore both are wrapped
in distinct types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package offset

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// ByteOffset is a position in the UTF-8 encoding of a string.
// Valid byte offsets sit on grapheme cluster boundaries, never in the
// interior of a multi-byte code point or of a cluster.
type ByteOffset int

// WidthOffset is a cumulative display-column count, as measured by a
// ruler.
type WidthOffset int

func (b ByteOffset) String() string {
	return fmt.Sprintf("%db", int(b))
}

func (w WidthOffset) String() string {
	return fmt.Sprintf("%dw", int(w))
}

// --- Coordinate mapping ----------------------------------------------------

// A Mapping translates between the two coordinate spaces of a single
// string. It is built once per wrapping run by scanning the string's
// grapheme cluster boundaries, and holds one entry per cluster start
// plus a terminal entry at the end of the string.
//
// Lookups are total: a query which misses the recorded boundaries steps
// downward to the nearest recorded key, i.e. to the start of the
// containing grapheme cluster (remember that some clusters span several
// bytes as well as several columns). A query below the first entry
// yields zero.
type Mapping struct {
	b2w *treemap.Map
	w2b *treemap.Map
}

// NewMapping creates an empty coordinate mapping.
func NewMapping() *Mapping {
	return &Mapping{
		b2w: treemap.NewWithIntComparator(),
		w2b: treemap.NewWithIntComparator(),
	}
}

// Record stores a pair of corresponding positions, usually the start of
// a grapheme cluster in both coordinate spaces.
func (m *Mapping) Record(b ByteOffset, w WidthOffset) {
	m.b2w.Put(int(b), int(w))
	m.w2b.Put(int(w), int(b))
}

// Width returns the display column corresponding to byte position b.
// If b falls within a grapheme cluster, the column of the containing
// cluster is returned.
func (m *Mapping) Width(b ByteOffset) WidthOffset {
	if _, w := m.b2w.Floor(int(b)); w != nil {
		return WidthOffset(w.(int))
	}
	return 0
}

// Byte returns the byte position corresponding to display column w.
// If w falls within a grapheme cluster, the start of the containing
// cluster is returned.
func (m *Mapping) Byte(w WidthOffset) ByteOffset {
	if _, b := m.w2b.Floor(int(w)); b != nil {
		return ByteOffset(b.(int))
	}
	return 0
}

// Size returns the number of recorded boundary pairs.
func (m *Mapping) Size() int {
	return m.b2w.Size()
}
