/*
Package french disables split points which would detach French
double-angle quotation marks from their contents.

French typography sets a space between « » and the quoted text. Whether
that space is encoded as a no-break space or as an ordinary one, a line
must not start with » nor end with a dangling «, so split points
adjacent to the quotes are vetoed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package french

import (
	"unicode/utf8"

	"github.com/npillmayer/linewrap/wrap"
)

// Characters which must stay glued to the text before resp. after them.
var noBreakBefore = []rune{'»'}
var noBreakAfter = []rune{'«'}

// Filter vetoes split points adjacent to French quotation marks. The
// zero value is ready to use.
type Filter struct{}

// Run disables every point whose next character (at the point's end) is
// a closing quote, and every point immediately preceded (before the
// point's start) by an opening quote.
func (f Filter) Run(input string, splits []wrap.SplitPoint) {
	for i := range splits {
		if r, size := utf8.DecodeRuneInString(input[splits[i].End:]); size > 0 && contains(noBreakBefore, r) {
			splits[i].Enabled = false
		}
		if r, size := utf8.DecodeLastRuneInString(input[:splits[i].Start]); size > 0 && contains(noBreakAfter, r) {
			splits[i].Enabled = false
		}
	}
}

var _ wrap.Filter = Filter{}

func contains(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
