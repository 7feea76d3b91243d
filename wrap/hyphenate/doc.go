/*
Package hyphenate generates split points at hyphenation opportunities
inside words.

The package does not ship hyphenation knowledge of its own. Break
positions come from a Corpus, usually backed by a language-specific
dictionary; a small trie-backed exception dictionary is included for
callers (and tests) which want to hyphenate a known set of words without
pulling in a full pattern file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linewrap.hyphen'.
func tracer() tracing.Trace {
	return tracing.Select("linewrap.hyphen")
}
