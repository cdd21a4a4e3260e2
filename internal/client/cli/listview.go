package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/focus"
)

// Row is one renderable list entry.
type Row struct {
	ID    int64
	Cells []string
}

// ListView is the paginated list widget shared by the asset, assignment and
// ticket views: client-side search filter, fixed page size, page switching,
// and a focus coordinator that can highlight one row for a bounded time.
type ListView struct {
	title    string
	headers  []string
	pageSize int

	rows     []Row // unfiltered
	filtered []Row
	page     int
	query    string

	coordinator *focus.Coordinator
	deferred    []func()
	cursor      int // row offset to point at on next render, -1 for none
}

func NewListView(title string, headers []string, pageSize int) *ListView {
	v := &ListView{title: title, headers: headers, pageSize: pageSize, cursor: -1}
	v.coordinator = focus.New(focus.Params{
		Sequence:    v.sequence,
		PageSize:    func() int { return v.pageSize },
		CurrentPage: func() int { return v.page },
		RequestPage: v.switchPage,
		ScrollTo:    func(row int) { v.cursor = row },
		Defer:       func(fn func()) { v.deferred = append(v.deferred, fn) },
	})
	return v
}

// SetRows replaces the underlying data and re-applies the search filter.
func (v *ListView) SetRows(rows []Row) {
	v.rows = rows
	v.applyFilter()
	v.coordinator.NotifyDataChanged()
}

// SetQuery sets the free-text filter and resets to the first page.
func (v *ListView) SetQuery(query string) {
	v.query = strings.ToLower(strings.TrimSpace(query))
	v.page = 0
	v.applyFilter()
	v.coordinator.NotifyDataChanged()
}

// SetPageSize changes the partition size; a pending focus referencing the
// old partition is dropped.
func (v *ListView) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	v.pageSize = size
	v.page = 0
	v.coordinator.NotifyPageSizeChanged()
}

// SetPage switches to the given zero-based page, clamped to range.
func (v *ListView) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	if max := v.PageCount() - 1; page > max {
		page = max
	}
	v.page = page
	v.coordinator.NotifyPageChanged()
}

func (v *ListView) Page() int { return v.page }

func (v *ListView) PageCount() int {
	n := (len(v.filtered) + v.pageSize - 1) / v.pageSize
	if n == 0 {
		n = 1
	}
	return n
}

// Focus asks the coordinator to bring the row with the given id into view.
func (v *ListView) Focus(id int64) {
	v.coordinator.Focus(id)
}

// Close releases the coordinator's timer.
func (v *ListView) Close() {
	v.coordinator.Close()
}

// switchPage is the coordinator's page-change requester. The page takes
// effect immediately, so the settle notification follows right away.
func (v *ListView) switchPage(page int) {
	v.page = page
	v.coordinator.NotifyPageChanged()
}

func (v *ListView) sequence() []int64 {
	ids := make([]int64, len(v.filtered))
	for i, r := range v.filtered {
		ids[i] = r.ID
	}
	return ids
}

func (v *ListView) applyFilter() {
	if v.query == "" {
		v.filtered = v.rows
		return
	}
	v.filtered = nil
	for _, r := range v.rows {
		for _, cell := range r.Cells {
			if strings.Contains(strings.ToLower(cell), v.query) {
				v.filtered = append(v.filtered, r)
				break
			}
		}
	}
}

// Render prints the current page. Scrolls deferred by the coordinator run
// first so the cursor points at the focused row.
func (v *ListView) Render(w io.Writer) {
	for _, fn := range v.deferred {
		fn()
	}
	v.deferred = nil

	highlighted, hasHighlight := v.coordinator.HighlightedID()

	fmt.Fprintf(w, "%s (page %d/%d", v.title, v.page+1, v.PageCount())
	if v.query != "" {
		fmt.Fprintf(w, ", filter %q", v.query)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w, "  "+strings.Join(v.headers, " | "))

	start := v.page * v.pageSize
	end := start + v.pageSize
	if start > len(v.filtered) {
		start = len(v.filtered)
	}
	if end > len(v.filtered) {
		end = len(v.filtered)
	}

	for i, r := range v.filtered[start:end] {
		marker := "  "
		if hasHighlight && r.ID == highlighted {
			marker = "* "
		}
		if i == v.cursor {
			// The cursor shares the column with the highlight glyph so
			// both stay visible on the focused row.
			if marker == "* " {
				marker = ">*"
			} else {
				marker = "> "
			}
		}
		fmt.Fprintln(w, marker+strings.Join(r.Cells, " | "))
	}
	v.cursor = -1
}
