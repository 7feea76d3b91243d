/*
Package monospace implements a ruler for monospace output, where a
rune occupies up to two terminal cells and control characters occupy
none.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/linewrap/core/offset"
)

// Ruler measures display width in terminal cells.
type Ruler struct {
	cond *runewidth.Condition
}

// New creates a monospace ruler for the current locale.
func New() Ruler {
	return Ruler{cond: runewidth.NewCondition()}
}

// Measure returns the number of cells fragment occupies. Control
// characters occupy no cells.
func (r Ruler) Measure(fragment string) offset.WidthOffset {
	return offset.WidthOffset(r.cond.StringWidth(fragment))
}
