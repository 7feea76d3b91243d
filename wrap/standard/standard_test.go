package standard

import (
	"testing"

	"github.com/npillmayer/linewrap/wrap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunitiesBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(1).Opportunities("foo bar")
	require.Len(t, splits, 2)
	soft := wrap.NewSplitPoint(3, 4, 1)
	assert.Equal(t, soft, splits[0], "soft break should swallow the space")
	terminal := wrap.NewSplitPoint(7, 7, 1)
	terminal.Glue = ""
	terminal.Mandatory = true
	assert.Equal(t, terminal, splits[1])
}

func TestOpportunitiesNewline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(0).Opportunities("ab\ncd")
	require.NotEmpty(t, splits)
	hard := wrap.NewSplitPoint(2, 3, 0)
	hard.Mandatory = true
	assert.Equal(t, hard, splits[0], "terminator should become the glue of a mandatory point")
}

func TestOpportunitiesCRLF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(0).Opportunities("a\r\nb")
	require.NotEmpty(t, splits)
	hard := wrap.NewSplitPoint(1, 3, 0)
	hard.Glue = "\r\n"
	hard.Mandatory = true
	assert.Equal(t, hard, splits[0], "CRLF should survive as a unit")
}

func TestOpportunitiesTrailingNewline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(0).Opportunities("ab\n")
	require.Len(t, splits, 1)
	assert.EqualValues(t, 2, splits[0].Start)
	assert.EqualValues(t, 3, splits[0].End)
	assert.Equal(t, "\n", splits[0].Glue)
	assert.True(t, splits[0].Mandatory)
}

func TestOpportunitiesLeadingSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(0).Opportunities("  a b")
	require.NotEmpty(t, splits)
	assert.EqualValues(t, 0, splits[0].Start, "whitespace scan should reach the start of the input")
	assert.EqualValues(t, 2, splits[0].End)
}

func TestOpportunitiesNoBreakAtNbsp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := New(0).Opportunities("b\u00a0r")
	require.Len(t, splits, 1, "a no-break space is not an opportunity")
	assert.EqualValues(t, len("b\u00a0r"), splits[0].Start)
	assert.True(t, splits[0].Mandatory)
}

func TestWhitespaceClasses(t *testing.T) {
	for _, r := range []rune{'\t', ' ', '\u1680', '\u2000', '\u2005', '\u200a', '\u205f', '\u3000'} {
		assert.True(t, isBreakableSpace(r), "%#U should be breakable whitespace", r)
	}
	for _, r := range []rune{'\u00a0', '\u202f', 'x'} {
		assert.False(t, isBreakableSpace(r), "%#U should not be breakable whitespace", r)
	}
	for _, r := range []rune{'\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029'} {
		assert.True(t, isTerminator(r), "%#U should be a terminator", r)
	}
}
