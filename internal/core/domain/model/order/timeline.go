package order

import "time"

// TimelineEntry records one accepted status transition.
// Entries are derived from transitions and never drive them.
type TimelineEntry struct {
	status Status
	at     time.Time
}

// NewTimelineEntry builds an entry; used when restoring persisted timelines.
func NewTimelineEntry(status Status, at time.Time) TimelineEntry {
	return TimelineEntry{status: status, at: at}
}

// Status returns the stage that was entered.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Label returns the display text, e.g. "Order Placed" or "Out for Delivery".
func (e TimelineEntry) Label() string {
	return e.status.Label()
}

// At returns when the stage was entered.
func (e TimelineEntry) At() time.Time {
	return e.at
}
