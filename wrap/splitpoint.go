package wrap

import (
	"fmt"

	"github.com/npillmayer/linewrap/core/offset"
)

// A SplitPoint is a potential line break within a run of text.
//
// Start is the first byte to be elided by the split, End the first byte
// of the next line. Both sit on grapheme cluster boundaries of the input
// the point was generated for. The text between Start and End vanishes
// from the output and is replaced by Glue.
type SplitPoint struct {
	Start     offset.ByteOffset  // first byte elided by the split
	End       offset.ByteOffset  // first byte of the next line
	Glue      string             // text inserted at the break position
	Mandatory bool               // forced break (line terminator)
	Priority  int                // non-negative, added to sort key and selection score
	Width     offset.WidthOffset // column of Start plus glue width, set by the engine
	Enabled   bool               // disabled points are skipped during selection

	measured bool // Width has been filled in
	score    int  // cached selection score, computed together with Width
}

// NewSplitPoint creates an enabled, non-mandatory split point with glue
// "\n". The width is left unset; the engine fills it in before
// selection.
func NewSplitPoint(start, end offset.ByteOffset, priority int) SplitPoint {
	return SplitPoint{
		Start:    start,
		End:      end,
		Glue:     "\n",
		Priority: priority,
		Enabled:  true,
	}
}

// measure fills in the width of a split point. glueWidth is the ruler
// width of the point's glue, already contained in width.
//
// The selection score is cached alongside: points ending later on the
// line are preferred, priority is added the same way it participates in
// ordering, and the glue width is subtracted so that of two points at
// the same column the one whose glue adds less wins.
func (s *SplitPoint) measure(width, glueWidth offset.WidthOffset) {
	s.Width = width
	s.score = int(width) + s.Priority - int(glueWidth)
	s.measured = true
}

// Measured tells whether the engine has filled in the width.
func (s SplitPoint) Measured() bool {
	return s.measured
}

// Before is the total order on split points: ascending by
// priority + start, ties broken by ascending end. Sorting with Before
// guarantees that among points of equal cost the earliest in the input
// comes first.
func (s SplitPoint) Before(other SplitPoint) bool {
	a := s.Priority + int(s.Start)
	b := other.Priority + int(other.Start)
	if a == b {
		return s.End < other.End
	}
	return a < b
}

func (s SplitPoint) String() string {
	flag := ""
	if s.Mandatory {
		flag = "!"
	}
	if !s.Enabled {
		flag += "⊘" // circled division slash, point is disabled
	}
	if !s.measured {
		return fmt.Sprintf("✂%s[%v…%v %q p=%d]", flag, s.Start, s.End, s.Glue, s.Priority)
	}
	return fmt.Sprintf("✂%s[%v…%v %q p=%d w=%v]", flag, s.Start, s.End, s.Glue, s.Priority, s.Width)
}

// --- Plug-in contracts -----------------------------------------------------

// A Ruler measures the display width of a text fragment, in columns.
// Measuring the empty string yields 0. Measurements are additive over
// concatenation of grapheme clusters, i.e. a running sum over the
// clusters of a fragment equals the measurement of the whole fragment.
type Ruler interface {
	Measure(fragment string) offset.WidthOffset
}

// A Generator produces candidate split points for an input text.
//
// Every returned point's Start and End are grapheme cluster boundaries
// of the input, the width is left unset, priority and glue are the
// generator's configured values. Points must be distinct; their order
// within the returned sequence does not matter, the engine sorts.
type Generator interface {
	Opportunities(input string) []SplitPoint
}

// A Filter disables split points which are forbidden by contextual
// rules. Run may flip the Enabled flag of any point in splits, reading
// the surrounding text through the points' offsets; it must not
// reorder, add or remove entries.
type Filter interface {
	Run(input string, splits []SplitPoint)
}
