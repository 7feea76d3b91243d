/*
Package wrap implements a Unicode-aware line-wrapping engine.

The engine folds a run of text into lines whose displayed width does not
exceed a caller-supplied target. It does not know how to find break
positions itself: candidate positions are produced by pluggable
generators (see the sub-packages standard and hyphenate), may be vetoed
by pluggable filters (see sub-package french), and are scored against a
pluggable ruler which measures display width (see sub-packages
unicodewidth and monospace).

Selection is greedy, line by line. This trades the occasionally ragged
right margin of a first-fit strategy for predictability and linear run
time; paragraph-level optimization is a different kind of animal and out
of scope for this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linewrap.engine'.
func tracer() tracing.Trace {
	return tracing.Select("linewrap.engine")
}
