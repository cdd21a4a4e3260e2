// Package focus locates a target record inside a filtered, paginated list,
// switches the list to the owning page if needed, scrolls the row into view,
// and applies a time-limited highlight. The coordinator is shared by the
// asset, assignment and ticket views; each wires it up with its own
// accessors.
package focus

import (
	"sync"
	"time"
)

// DefaultHighlightDuration is how long a focused row stays highlighted.
const DefaultHighlightDuration = 4500 * time.Millisecond

// startTimer is a test seam for time.AfterFunc.
var startTimer = time.AfterFunc

// Params parameterizes a Coordinator with the owning list's state accessors
// and primitives. Sequence must return record ids in the list's filtered
// order; the order is what index computation relies on.
//
// RequestPage, ScrollTo and Defer are invoked with no coordinator lock held,
// so a list that switches pages synchronously may call NotifyPageChanged
// from inside RequestPage.
type Params struct {
	Sequence    func() []int64
	PageSize    func() int
	CurrentPage func() int

	// RequestPage asks the list to switch pages. The list must call
	// NotifyPageChanged once the switch took effect.
	RequestPage func(page int)

	// ScrollTo brings the row at the given offset within the current page
	// into view.
	ScrollTo func(rowIndexWithinPage int)

	// Defer schedules fn past the current update so the target row exists
	// when ScrollTo runs. Nil means run immediately.
	Defer func(fn func())

	// HighlightDuration overrides DefaultHighlightDuration when positive.
	HighlightDuration time.Duration
}

// pendingHandle survives only while a page change is in flight.
type pendingHandle struct {
	id         int64
	targetPage int
}

type Coordinator struct {
	p Params

	mu          sync.Mutex
	pending     *pendingHandle
	highlighted int64
	gen         uint64
	timer       *time.Timer
	closed      bool
}

func New(p Params) *Coordinator {
	if p.HighlightDuration <= 0 {
		p.HighlightDuration = DefaultHighlightDuration
	}
	return &Coordinator{p: p}
}

// Focus requests that the record with the given id be brought into view and
// highlighted. An id absent from the filtered sequence is a silent no-op.
func (c *Coordinator) Focus(id int64) {
	c.mu.Lock()
	next := c.evaluateLocked(id)
	c.mu.Unlock()
	if next != nil {
		next()
	}
}

// evaluateLocked runs the Locating step: it either arms the highlight or
// parks a pending handle behind a page-change request. Caller holds c.mu.
// The returned follow-up, if any, must be run after releasing the lock; it
// is the part that calls back into the list.
func (c *Coordinator) evaluateLocked(id int64) func() {
	if c.closed {
		return nil
	}

	idx := indexOf(c.p.Sequence(), id)
	if idx < 0 {
		return nil
	}

	pageSize := c.p.PageSize()
	if pageSize <= 0 {
		return nil
	}
	targetPage := idx / pageSize
	row := idx - targetPage*pageSize

	if c.p.CurrentPage() != targetPage {
		c.pending = &pendingHandle{id: id, targetPage: targetPage}
		return func() { c.p.RequestPage(targetPage) }
	}
	return c.armLocked(id, row)
}

// NotifyPageChanged must be called by the list after a page switch has taken
// effect. If the new page matches a pending handle, the handle settles: the
// position is recomputed against the current sequence so stale indexes are
// never scrolled to.
func (c *Coordinator) NotifyPageChanged() {
	c.mu.Lock()
	var next func()
	if !c.closed && c.pending != nil && c.p.CurrentPage() == c.pending.targetPage {
		id := c.pending.id
		c.pending = nil
		next = c.evaluateLocked(id)
	}
	c.mu.Unlock()
	if next != nil {
		next()
	}
}

// NotifyDataChanged must be called when the filtered sequence changed (new
// search term, filter toggle, refetch). A pending focus is re-evaluated from
// scratch against the fresh sequence.
func (c *Coordinator) NotifyDataChanged() {
	c.mu.Lock()
	var next func()
	if !c.closed && c.pending != nil {
		id := c.pending.id
		c.pending = nil
		next = c.evaluateLocked(id)
	}
	c.mu.Unlock()
	if next != nil {
		next()
	}
}

// NotifyPageSizeChanged invalidates any pending handle: it referenced the
// old page partition and must not trigger a scroll.
func (c *Coordinator) NotifyPageSizeChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// HighlightedID returns the currently highlighted record id, if any.
func (c *Coordinator) HighlightedID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlighted, c.highlighted != 0
}

// Close cancels the outstanding timer and pending handle. The coordinator
// accepts no further requests.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.pending = nil
	c.highlighted = 0
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// armLocked records the highlight and starts its timer; a previous timer is
// cancelled so highlights never stack. Caller holds c.mu. The returned
// follow-up performs the scroll (directly or via Defer) outside the lock.
func (c *Coordinator) armLocked(id int64, row int) func() {
	c.pending = nil

	if c.timer != nil {
		c.timer.Stop()
	}
	c.highlighted = id
	c.gen++
	gen := c.gen
	c.timer = startTimer(c.p.HighlightDuration, func() {
		c.expire(gen)
	})

	scroll := func() { c.p.ScrollTo(row) }
	if c.p.Defer != nil {
		return func() { c.p.Defer(scroll) }
	}
	return scroll
}

// expire clears the highlight unless a newer focus superseded it.
func (c *Coordinator) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.highlighted = 0
	c.timer = nil
}

func indexOf(seq []int64, id int64) int {
	for i, v := range seq {
		if v == id {
			return i
		}
	}
	return -1
}
