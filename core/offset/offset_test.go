package offset

import (
	"testing"
)

func TestMappingLookup(t *testing.T) {
	m := NewMapping()
	m.Record(0, 0)
	m.Record(1, 1)
	m.Record(5, 3) // a wide cluster spanning bytes 1–4, columns 1–2
	m.Record(6, 4)
	if w := m.Width(5); w != 3 {
		t.Errorf("width of byte 5 should be 3, is %v", w)
	}
	if w := m.Width(3); w != 1 {
		t.Errorf("byte 3 sits inside a cluster, width should round down to 1, is %v", w)
	}
	if b := m.Byte(2); b != 1 {
		t.Errorf("column 2 sits inside a cluster, byte should round down to 1, is %v", b)
	}
	if m.Size() != 4 {
		t.Errorf("mapping should hold 4 pairs, holds %d", m.Size())
	}
}

func TestMappingMissBelowFirstEntry(t *testing.T) {
	m := NewMapping()
	m.Record(4, 2)
	if w := m.Width(3); w != 0 {
		t.Errorf("lookup below the first entry should yield 0, got %v", w)
	}
	if b := m.Byte(1); b != 0 {
		t.Errorf("lookup below the first entry should yield 0, got %v", b)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	m := NewMapping()
	boundaries := []struct {
		b ByteOffset
		w WidthOffset
	}{{0, 0}, {1, 1}, {5, 3}, {6, 4}, {9, 5}}
	for _, pair := range boundaries {
		m.Record(pair.b, pair.w)
	}
	for _, pair := range boundaries {
		if b := m.Byte(m.Width(pair.b)); b != pair.b {
			t.Errorf("round trip of byte %v yields %v", pair.b, b)
		}
	}
}
