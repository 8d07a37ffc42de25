package benchmark

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timingRecords() []*Record {
	return []*Record{
		NewRecord().Set("name", "a").Set("t", 1.0),
		NewRecord().Set("name", "b").Set("t", 2.0),
	}
}

// plain renders with the fallback renderer and no printing, for easy
// line-level assertions.
func plain(t *testing.T, records []*Record, cfg DisplayConfig) []string {
	t.Helper()
	cfg.PrintOut = false
	cfg.Renderer = PlainRenderer{}
	out, err := Display(records, cfg)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\n\n"), "Report must end with a blank separator line")
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestDisplaySortAscending(t *testing.T) {
	lines := plain(t, timingRecords(), DisplayConfig{SortBy: "t", Desc: false})

	assert.Equal(t, []string{
		"name\tt",
		"a\t1",
		"b\t2",
	}, lines)
}

func TestDisplaySortDescending(t *testing.T) {
	lines := plain(t, timingRecords(), DisplayConfig{SortBy: "t", Desc: true})

	assert.Equal(t, []string{
		"name\tt",
		"b\t2",
		"a\t1",
	}, lines)
}

func TestDisplaySortStable(t *testing.T) {
	records := []*Record{
		NewRecord().Set("name", "first").Set("t", 1),
		NewRecord().Set("name", "second").Set("t", 1),
		NewRecord().Set("name", "third").Set("t", 1),
	}

	for _, desc := range []bool{false, true} {
		lines := plain(t, records, DisplayConfig{SortBy: "t", Desc: desc})
		assert.Equal(t, []string{
			"name\tt",
			"first\t1",
			"second\t1",
			"third\t1",
		}, lines, "Ties must preserve original order (desc=%v)", desc)
	}
}

func TestDisplayNoSort(t *testing.T) {
	lines := plain(t, timingRecords(), DisplayConfig{})

	assert.Equal(t, []string{
		"name\tt",
		"a\t1",
		"b\t2",
	}, lines)
}

func TestDisplayStringSort(t *testing.T) {
	records := []*Record{
		NewRecord().Set("name", "banana"),
		NewRecord().Set("name", "apple"),
	}

	lines := plain(t, records, DisplayConfig{SortBy: "name", Desc: false})
	assert.Equal(t, []string{"name", "apple", "banana"}, lines)
}

func TestDisplayUnknownSortKey(t *testing.T) {
	_, err := Display(timingRecords(), DisplayConfig{SortBy: "latency"})
	require.Error(t, err)

	var unknown *UnknownSortKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "latency", unknown.Key)
}

func TestDisplaySortByFilteredColumn(t *testing.T) {
	// Hiding the sort column makes it unknown to the sort stage.
	cfg := DisplayConfig{SortBy: "t", HiddenCols: []string{"t"}}

	_, err := Display(timingRecords(), cfg)
	var unknown *UnknownSortKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "t", unknown.Key)
}

func TestDisplayColsAllowList(t *testing.T) {
	lines := plain(t, timingRecords(), DisplayConfig{DisplayCols: []string{"t"}})

	assert.Equal(t, []string{"t", "1", "2"}, lines)
}

func TestDisplayHiddenCols(t *testing.T) {
	lines := plain(t, timingRecords(), DisplayConfig{HiddenCols: []string{"t"}})

	assert.Equal(t, []string{"name", "a", "b"}, lines)
}

func TestDisplayFilterPrecedence(t *testing.T) {
	// hidden_cols is applied after display_cols, so a column named in both
	// ends up hidden.
	cfg := DisplayConfig{
		DisplayCols: []string{"t"},
		HiddenCols:  []string{"t"},
	}

	lines := plain(t, timingRecords(), cfg)
	assert.Equal(t, []string{""}, lines, "Column t must be absent even though it passed the allow-list")
}

func TestDisplayColumnUnion(t *testing.T) {
	// Later records may introduce new columns; they join the header in
	// first-seen order and earlier records render empty cells.
	records := []*Record{
		NewRecord().Set("name", "a").Set("t", 1),
		NewRecord().Set("name", "b").Set("t", 2).Set("mem", 512),
	}

	lines := plain(t, records, DisplayConfig{})
	assert.Equal(t, []string{
		"name\tt\tmem",
		"a\t1\t",
		"b\t2\t512",
	}, lines)
}

func TestDisplayIdempotent(t *testing.T) {
	records := timingRecords()
	cfg := DisplayConfig{
		SortBy:      "t",
		Desc:        true,
		DisplayCols: []string{"name", "t"},
		HiddenCols:  []string{"name"},
		PrintOut:    false,
		Renderer:    PlainRenderer{},
	}

	first, err := Display(records, cfg)
	require.NoError(t, err)
	second, err := Display(records, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDisplayPrintOut(t *testing.T) {
	var buf bytes.Buffer
	cfg := DisplayConfig{PrintOut: true, Out: &buf, Renderer: PlainRenderer{}}

	out, err := Display(timingRecords(), cfg)
	require.NoError(t, err)
	assert.Equal(t, out, buf.String())

	buf.Reset()
	cfg.PrintOut = false
	out, err = Display(timingRecords(), cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, out, "Rendered text is returned even when printing is suppressed")
	assert.Zero(t, buf.Len())
}

func TestDisplayTableRenderer(t *testing.T) {
	cfg := DisplayConfig{PrintOut: false}

	out, err := Display(timingRecords(), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "t")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.True(t, strings.HasSuffix(out, "\n\n"), "Report must end with a blank separator line")
}

func TestDisplayEmptyBatch(t *testing.T) {
	out, err := Display(nil, DisplayConfig{PrintOut: false, Renderer: PlainRenderer{}})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}

func TestRecordColumnsOrder(t *testing.T) {
	rec := NewRecord().Set("name", "x").Set("t", 1).Set("mem", 2)

	assert.Equal(t, []string{"name", "t", "mem"}, rec.Columns())
	assert.Equal(t, 3, rec.Len())

	// Overwriting keeps the original position.
	rec.Set("t", 9)
	assert.Equal(t, []string{"name", "t", "mem"}, rec.Columns())
	v, ok := rec.Get("t")
	require.True(t, ok)
	assert.Equal(t, 9, v)
}
