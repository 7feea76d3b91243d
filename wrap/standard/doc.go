/*
Package standard generates split points according to the Unicode
standard line-breaking algorithm (UAX#14).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package standard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linewrap.breaks'.
func tracer() tracing.Trace {
	return tracing.Select("linewrap.breaks")
}
