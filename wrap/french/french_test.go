package french

import (
	"testing"

	"github.com/npillmayer/linewrap/wrap"
	"github.com/npillmayer/linewrap/wrap/standard"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filtered(t *testing.T, text string) []wrap.SplitPoint {
	teardown := gotestingadapter.QuickConfig(t, "linewrap.breaks")
	defer teardown()
	splits := standard.New(0).Opportunities(text)
	require.NotEmpty(t, splits)
	Filter{}.Run(text, splits)
	return splits
}

func TestDontBreakBefore(t *testing.T) {
	splits := filtered(t, "a »")
	assert.False(t, splits[0].Enabled)
}

func TestDontBreakAfter(t *testing.T) {
	splits := filtered(t, "« a")
	assert.False(t, splits[0].Enabled)
}

func TestDontBreakCombined(t *testing.T) {
	splits := filtered(t, "« a »")
	assert.False(t, splits[0].Enabled)
	assert.False(t, splits[1].Enabled)
}

func TestUnrelatedSplitsUntouched(t *testing.T) {
	splits := filtered(t, "a b")
	assert.True(t, splits[0].Enabled)
}
