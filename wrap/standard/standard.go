package standard

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/linewrap/core/offset"
	"github.com/npillmayer/linewrap/wrap"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// A Breaker produces split points at UAX#14 line-break opportunities.
// The zero value is ready to use; Priority is attached to every
// generated point.
type Breaker struct {
	Priority int
}

// New creates a Breaker with the given priority.
func New(priority int) *Breaker {
	return &Breaker{Priority: priority}
}

// Opportunities returns the split points of input.
//
// Mandatory breaks swallow the line terminator into the point's glue,
// so that CR, LF, CRLF, VT, FF, NEL, LS and PS sequences present in the
// input survive wrapping unchanged. Soft breaks swallow the run of
// breakable whitespace preceding the break position and glue with "\n".
// The break opportunity at the end of the input is always mandatory;
// unless the input ends with a line terminator, its point has empty
// glue and swallows nothing.
func (b Breaker) Opportunities(input string) []wrap.SplitPoint {
	var splits []wrap.SplitPoint
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(input))
	pos := 0
	for seg.Next() {
		pos += len(seg.Text())
		if p1, _ := seg.Penalties(); p1 >= uax.InfinitePenalty && pos < len(input) {
			continue // segment boundary, but not a break opportunity
		}
		splits = append(splits, b.splitAt(input, pos))
	}
	tracer().Debugf("%d break opportunities in %d bytes of text", len(splits), len(input))
	return splits
}

var _ wrap.Generator = Breaker{}

// splitAt builds the split point for a break opportunity after byte
// position pos.
func (b Breaker) splitAt(input string, pos int) wrap.SplitPoint {
	sp := wrap.NewSplitPoint(offset.ByteOffset(pos), offset.ByteOffset(pos), b.Priority)
	r, size := utf8.DecodeLastRuneInString(input[:pos])
	switch {
	case size > 0 && isTerminator(r):
		start := pos - size
		if r == '\n' && strings.HasSuffix(input[:start], "\r") {
			start-- // CRLF is one terminator sequence
		}
		sp.Start = offset.ByteOffset(start)
		sp.Glue = input[start:pos]
		sp.Mandatory = true
	case pos == len(input):
		sp.Glue = "" // terminal point, no content swallowed
		sp.Mandatory = true
	default:
		start := pos
		for start > 0 {
			q, qsize := utf8.DecodeLastRuneInString(input[:start])
			if !isBreakableSpace(q) {
				break
			}
			start -= qsize
		}
		sp.Start = offset.ByteOffset(start)
	}
	return sp
}

// isTerminator reports whether r demands a line break.
func isTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isBreakableSpace reports whether r belongs to the whitespace set
// elided by soft breaks. The no-break spaces U+00A0 and U+202F are
// absent; U+2007 FIGURE SPACE lies in the U+2000–U+200A range and is
// included.
func isBreakableSpace(r rune) bool {
	switch {
	case r == '\t' || r == ' ':
		return true
	case r >= '\u2000' && r <= '\u200a':
		return true
	case r == '\u1680' || r == '\u2028' || r == '\u205f' || r == '\u3000':
		return true
	}
	return false
}
