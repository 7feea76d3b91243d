package hyphenate

import (
	"github.com/npillmayer/linewrap/core/offset"
	"github.com/npillmayer/linewrap/wrap"
)

// A Corpus knows where words may be hyphenated.
//
// InWordBreakOffsets returns the byte offsets inside text at which a
// hyphenation break is permitted, in ascending order. Offsets are never
// located at whitespace, and never inside words which already carry a
// break indicator (ASCII hyphen, soft hyphen U+00AD, hyphenation point
// U+2027 and friends): text with explicit break hints is left alone.
type Corpus interface {
	InWordBreakOffsets(text string) []offset.ByteOffset
}

// A Hyphenator produces split points at the hyphenation opportunities
// of a corpus. Each point spans nothing (start equals end), so the
// break only inserts glue.
type Hyphenator struct {
	priority int
	corpus   Corpus
	glue     string
}

// New creates a Hyphenator drawing on corpus. glue is the text inserted
// at used breaks; the empty string selects the default "-\n".
func New(corpus Corpus, priority int, glue string) *Hyphenator {
	if glue == "" {
		glue = "-\n"
	}
	return &Hyphenator{
		priority: priority,
		corpus:   corpus,
		glue:     glue,
	}
}

// Opportunities returns a split point for every in-word break offset of
// the corpus.
func (h *Hyphenator) Opportunities(input string) []wrap.SplitPoint {
	offsets := h.corpus.InWordBreakOffsets(input)
	tracer().Debugf("corpus finds %d hyphenation opportunities", len(offsets))
	splits := make([]wrap.SplitPoint, 0, len(offsets))
	for _, o := range offsets {
		sp := wrap.NewSplitPoint(o, o, h.priority)
		sp.Glue = h.glue
		splits = append(splits, sp)
	}
	return splits
}

var _ wrap.Generator = &Hyphenator{}
