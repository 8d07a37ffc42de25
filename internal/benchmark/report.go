package benchmark

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// DisplayConfig configures how a batch of benchmark records is rendered.
type DisplayConfig struct {
	// PrintOut writes the rendered table to Out (stdout when nil). The
	// rendered string is returned either way.
	PrintOut bool

	// Desc sorts in non-increasing order when SortBy is set.
	Desc bool

	// SortBy names the column to sort rows by. "" = no sorting. Sorting by a
	// column absent after filtering is an UnknownSortKeyError.
	SortBy string

	// HiddenCols is a deny-list of columns, applied after DisplayCols. A
	// column named in both lists ends up hidden.
	HiddenCols []string

	// DisplayCols is an allow-list of columns, applied first. nil = keep all.
	DisplayCols []string

	// Out is the destination for PrintOut. nil = os.Stdout.
	Out io.Writer

	// Renderer renders the filtered header and rows. nil = aligned table.
	Renderer Renderer
}

// DefaultDisplayConfig returns the default display configuration: print to
// stdout, sort descending when a sort key is set, no filtering.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		PrintOut: true,
		Desc:     true,
	}
}

// Renderer renders a header and data rows as text. Implementations must
// terminate their output with a newline.
type Renderer interface {
	Render(w io.Writer, header []string, rows [][]string)
}

// TableRenderer renders an aligned table.
type TableRenderer struct{}

// Render writes header and rows as a left-aligned borderless table.
func (TableRenderer) Render(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()
}

// PlainRenderer is the degraded fallback: one tab-delimited header line,
// then one tab-delimited line per record.
type PlainRenderer struct{}

// Render writes header and rows as tab-delimited lines.
func (PlainRenderer) Render(w io.Writer, header []string, rows [][]string) {
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

// Display filters, sorts and renders a batch of benchmark records, returning
// the rendered text. The column set is the union of the records' columns in
// first-seen order; cells absent from a record render empty. The rendered
// block always ends with a blank line so that successive reports stay
// separated in a combined log.
//
// Display is a single-pass transform: applying the same config to the same
// batch twice yields the same visible columns and row order both times.
func Display(records []*Record, cfg DisplayConfig) (string, error) {
	cols := unionColumns(records)
	cols = filterColumns(cols, cfg.DisplayCols, cfg.HiddenCols)

	rows := make([]*Record, len(records))
	copy(rows, records)

	if cfg.SortBy != "" {
		if !containsColumn(cols, cfg.SortBy) {
			return "", &UnknownSortKeyError{Key: cfg.SortBy}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			vi, _ := rows[i].Get(cfg.SortBy)
			vj, _ := rows[j].Get(cfg.SortBy)
			if cfg.Desc {
				return compareValues(vj, vi) < 0
			}
			return compareValues(vi, vj) < 0
		})
	}

	cells := make([][]string, len(rows))
	for i, rec := range rows {
		cells[i] = make([]string, len(cols))
		for j, col := range cols {
			if v, ok := rec.Get(col); ok {
				cells[i][j] = fmt.Sprint(v)
			}
		}
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = TableRenderer{}
	}

	var buf strings.Builder
	renderer.Render(&buf, cols, cells)
	buf.WriteString("\n")

	out := buf.String()
	if cfg.PrintOut {
		w := cfg.Out
		if w == nil {
			w = os.Stdout
		}
		io.WriteString(w, out) //nolint:errcheck // Report output is best-effort
	}
	return out, nil
}

// unionColumns collects the union of all records' columns in first-seen
// order.
func unionColumns(records []*Record) []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, col := range rec.Columns() {
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			cols = append(cols, col)
		}
	}
	return cols
}

// filterColumns applies the allow-list first, then the deny-list, preserving
// column order.
func filterColumns(cols, displayCols, hiddenCols []string) []string {
	if displayCols != nil {
		allowed := make(map[string]struct{}, len(displayCols))
		for _, col := range displayCols {
			allowed[col] = struct{}{}
		}
		kept := cols[:0:0]
		for _, col := range cols {
			if _, ok := allowed[col]; ok {
				kept = append(kept, col)
			}
		}
		cols = kept
	}
	if hiddenCols != nil {
		hidden := make(map[string]struct{}, len(hiddenCols))
		for _, col := range hiddenCols {
			hidden[col] = struct{}{}
		}
		kept := cols[:0:0]
		for _, col := range cols {
			if _, ok := hidden[col]; !ok {
				kept = append(kept, col)
			}
		}
		cols = kept
	}
	return cols
}

func containsColumn(cols []string, name string) bool {
	for _, col := range cols {
		if col == name {
			return true
		}
	}
	return false
}

// compareValues orders two cell values: numerically when both are numbers,
// by string form otherwise.
func compareValues(a, b any) int {
	fa, aNum := asFloat(a)
	fb, bNum := asFloat(b)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
