package wrap

import (
	"errors"
	"sort"
	"strings"

	"github.com/npillmayer/linewrap/core"
	"github.com/npillmayer/linewrap/core/offset"
	"github.com/npillmayer/uax/grapheme"
)

// ErrWidthZero is returned when an engine is created or re-configured
// with a target width of zero.
var ErrWidthZero = errors.New("width cannot be zero")

// ErrNoValidBreak is returned by Wrap when a line offers no enabled
// split point within the target width and breaking words is disabled.
var ErrNoValidBreak = errors.New("no valid split point found")

// A Wrapper is a line-wrapping engine. It owns a set of generators which
// propose split points, a set of filters which may veto them, and a
// ruler which measures display width.
//
// A Wrapper is read-only during a call to Wrap. Concurrent calls on a
// single Wrapper are safe as long as generators and filters do not
// mutate internal state of their own (all implementations in this
// module are stateless in that sense).
type Wrapper struct {
	width      offset.WidthOffset
	generators []Generator
	filters    []Filter
	ruler      Ruler
	breakWord  bool
	glue       string
}

// New creates a line-wrapping engine. width is the target line width in
// columns of the given ruler and must be at least 1. breakWord controls
// what happens when a line offers no split point within the target
// width: if set, the engine cuts mid-word at the width boundary,
// otherwise Wrap fails with ErrNoValidBreak.
func New(width int, generators []Generator, filters []Filter, ruler Ruler, breakWord bool) (*Wrapper, error) {
	if width == 0 {
		return nil, core.WrapError(ErrWidthZero, core.EINVALID, "cannot wrap to width 0")
	}
	grapheme.SetupGraphemeClasses()
	return &Wrapper{
		width:      offset.WidthOffset(width),
		generators: generators,
		filters:    filters,
		ruler:      ruler,
		breakWord:  breakWord,
		glue:       "\n",
	}, nil
}

// Width returns the current target line width.
func (w *Wrapper) Width() int {
	return int(w.width)
}

// SetWidth changes the target line width. A width of zero is rejected.
func (w *Wrapper) SetWidth(width int) error {
	if width == 0 {
		return core.WrapError(ErrWidthZero, core.EINVALID, "cannot wrap to width 0")
	}
	w.width = offset.WidthOffset(width)
	return nil
}

// Glue returns the glue inserted at forced cuts (see New about breaking
// words).
func (w *Wrapper) Glue() string {
	return w.glue
}

// SetGlue changes the glue inserted at forced cuts. The default is "\n".
func (w *Wrapper) SetGlue(glue string) {
	w.glue = glue
}

// Wrap folds input into lines of at most the target width. The result
// is input with the text spans of the used split points replaced by
// their glue. If the input already fits the target width it is returned
// unchanged.
func (w *Wrapper) Wrap(input string) (string, error) {
	lines, err := w.Lines(input)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}

// Lines folds input like Wrap, but returns the individual line
// fragments. Each fragment except the last ends with the glue of the cut
// terminating it, except for a cut starting at the very start or ending
// at the very end of input, which adds no glue (a cut at the very start
// yields an empty first fragment). Concatenating the fragments yields
// exactly the result of Wrap.
func (w *Wrapper) Lines(input string) ([]string, error) {
	m, total := w.scan(input)
	if total <= w.width {
		return []string{input}, nil
	}
	splits := w.harvest(input, m)
	for _, f := range w.filters {
		f.Run(input, splits)
	}
	sort.SliceStable(splits, func(i, j int) bool {
		return splits[i].Before(splits[j])
	})
	cuts, err := w.selectCuts(m, total, splits)
	if err != nil {
		return nil, err
	}
	return emit(input, cuts), nil
}

// MinWidth returns the smallest target width to which input can be
// folded without cutting mid-word, i.e. the width of the widest
// unbreakable chunk between consecutive enabled split points, each
// chunk measured together with the glue of the cut terminating it.
func (w *Wrapper) MinWidth(input string) int {
	m, total := w.scan(input)
	splits := w.harvest(input, m)
	for _, f := range w.filters {
		f.Run(input, splits)
	}
	sort.SliceStable(splits, func(i, j int) bool {
		if splits[i].Start == splits[j].Start {
			return splits[i].End < splits[j].End
		}
		return splits[i].Start < splits[j].Start
	})
	widest := offset.WidthOffset(0)
	last := offset.WidthOffset(0) // column the current chunk starts at
	for _, s := range splits {
		if !s.Enabled {
			continue
		}
		chunk := m.Width(s.Start) + w.ruler.Measure(s.Glue) - last
		if chunk > widest {
			widest = chunk
		}
		if end := m.Width(s.End); end > last {
			last = end
		}
	}
	if chunk := total - last; chunk > widest {
		widest = chunk
	}
	return int(widest)
}

// --- Wrapping stages -------------------------------------------------------

// scan walks input by grapheme clusters and builds the coordinate
// mapping between byte positions and display columns. The second return
// value is the total display width of input.
func (w *Wrapper) scan(input string) (*offset.Mapping, offset.WidthOffset) {
	m := offset.NewMapping()
	if input == "" {
		m.Record(0, 0)
		return m, 0
	}
	gstr := grapheme.StringFromString(input)
	pos := offset.ByteOffset(0)
	width := offset.WidthOffset(0)
	l := gstr.Len()
	for i := 0; i < l; i++ {
		g := gstr.Nth(i)
		m.Record(pos, width)
		pos += offset.ByteOffset(len(g))
		width += w.ruler.Measure(g)
	}
	m.Record(offset.ByteOffset(len(input)), width)
	if int(pos) != len(input) {
		tracer().Errorf("grapheme scan covered %v of %d input bytes", pos, len(input))
	}
	return m, width
}

// harvest collects the split points of all generators and fills in
// their widths: the column of the point's start plus the width of its
// glue.
func (w *Wrapper) harvest(input string, m *offset.Mapping) []SplitPoint {
	var splits []SplitPoint
	for _, gen := range w.generators {
		for _, s := range gen.Opportunities(input) {
			glueWidth := w.ruler.Measure(s.Glue)
			s.measure(m.Width(s.Start)+glueWidth, glueWidth)
			tracer().Debugf("harvested %v", s)
			splits = append(splits, s)
		}
	}
	return splits
}

// selectCuts is the greedy per-line selection loop. splits must be
// sorted (see SplitPoint.Before). The returned cuts are ordered by
// increasing start.
func (w *Wrapper) selectCuts(m *offset.Mapping, total offset.WidthOffset,
	splits []SplitPoint) ([]SplitPoint, error) {
	//
	var cuts, forced []SplitPoint
	glueWidth := w.ruler.Measure(w.glue)
	lineStart := offset.WidthOffset(0)
	candidate := 0
	for {
		endl := lineStart + w.width
		if endl >= total { // the remainder fits
			break
		}
		best := -1
		bestScore := 0
		for i := candidate; i < len(splits); i++ {
			s := splits[i]
			tracer().Debugf("considering %v for line at %v", s, lineStart)
			if s.Width > endl {
				candidate = i
				break
			}
			if !s.Enabled {
				continue
			}
			if s.Mandatory {
				best = i
				candidate = i + 1
				break
			}
			if best < 0 || s.score >= bestScore {
				best = i
				bestScore = s.score
			}
		}
		if best >= 0 {
			cut := splits[best]
			next := m.Width(cut.End)
			if next <= lineStart {
				// a cut that does not advance the line cannot be used
				best = -1
			} else {
				tracer().Debugf("selected %v", cut)
				cuts = append(cuts, cut)
				lineStart = next
			}
		}
		if best < 0 {
			if !w.breakWord {
				return nil, core.WrapError(ErrNoValidBreak, core.EINVALID,
					"no valid split point within %d columns", int(w.width))
			}
			b := m.Byte(endl)
			cut := SplitPoint{Start: b, End: b, Glue: w.glue, Enabled: true}
			cut.measure(endl+glueWidth, glueWidth)
			tracer().Debugf("forced cut %v", cut)
			forced = append(forced, cut)
			lineStart = endl
		}
	}
	return mergeCuts(cuts, forced), nil
}

// mergeCuts merges two start-ordered cut lists into one.
func mergeCuts(cuts, forced []SplitPoint) []SplitPoint {
	if len(forced) == 0 {
		return cuts
	}
	merged := make([]SplitPoint, 0, len(cuts)+len(forced))
	i, j := 0, 0
	for i < len(cuts) && j < len(forced) {
		if cuts[i].Start <= forced[j].Start {
			merged = append(merged, cuts[i])
			i++
		} else {
			merged = append(merged, forced[j])
			j++
		}
	}
	merged = append(merged, cuts[i:]...)
	merged = append(merged, forced[j:]...)
	return merged
}

// emit reconstructs the output from the used cuts. Glue is suppressed
// at the very start and the very end of the input, so that elided
// leading whitespace and trailing terminators do not grow extra breaks.
func emit(input string, cuts []SplitPoint) []string {
	lines := make([]string, 0, len(cuts)+1)
	current := offset.ByteOffset(0)
	for _, cut := range cuts {
		fragment := input[current:cut.Start]
		if cut.Start != 0 && int(cut.End) != len(input) {
			fragment += cut.Glue
		}
		lines = append(lines, fragment)
		current = cut.End
	}
	lines = append(lines, input[current:])
	return lines
}
