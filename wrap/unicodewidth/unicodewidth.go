/*
Package unicodewidth implements the default ruler, measuring display
width with East Asian width semantics (UAX#11).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unicodewidth

import (
	"unicode/utf8"

	"github.com/npillmayer/linewrap/core/offset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Ruler measures the display width of text fragments in columns,
// resolving ambiguous East Asian widths against a UAX#11 context.
type Ruler struct {
	context *uax11.Context
}

// New creates a Ruler for the given context. A nil context selects
// uax11.LatinContext.
func New(context *uax11.Context) *Ruler {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return &Ruler{context: context}
}

// Measure returns the number of columns fragment occupies. Measurement
// is additive over grapheme clusters. Control characters and line
// terminators occupy no columns.
func (r *Ruler) Measure(fragment string) offset.WidthOffset {
	if fragment == "" {
		return 0
	}
	gstr := grapheme.StringFromString(fragment)
	total := 0
	l := gstr.Len()
	for i := 0; i < l; i++ {
		g := gstr.Nth(i)
		if c, _ := utf8.DecodeRuneInString(g); isControl(c) {
			continue
		}
		total += uax11.Width([]byte(g), r.context)
	}
	return offset.WidthOffset(total)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || r == '\u0085' || r == '\u2028' || r == '\u2029'
}
