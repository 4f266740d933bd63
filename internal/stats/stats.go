// Package stats keeps in-memory counters reported by the daily digest task.
package stats

import "sync/atomic"

// Counters tracks activity since process start or the last digest reset.
type Counters struct {
	quotes   atomic.Int64
	bookings atomic.Int64
}

// New returns zeroed counters.
func New() *Counters {
	return &Counters{}
}

// QuoteCalculated records one completed price calculation.
func (c *Counters) QuoteCalculated() { c.quotes.Add(1) }

// BookingCreated records one completed booking.
func (c *Counters) BookingCreated() { c.bookings.Add(1) }

// Snapshot returns the current values and resets the counters.
func (c *Counters) Snapshot() (quotes, bookings int64) {
	return c.quotes.Swap(0), c.bookings.Swap(0)
}
