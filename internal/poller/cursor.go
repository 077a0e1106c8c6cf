package poller

import (
	"strconv"
	"strings"
	"time"
)

// Cursor is the since-id position of the poll loop. The zero value is an
// empty cursor.
type Cursor struct {
	newestID  string
	updatedAt time.Time
}

func (c *Cursor) ID() string {
	return c.newestID
}

func (c *Cursor) UpdatedAt() time.Time {
	return c.updatedAt
}

// Advance moves the cursor to id if it is numerically larger than the current
// position. Empty ids and ties are ignored.
func (c *Cursor) Advance(id string, now time.Time) bool {
	if id == "" {
		return false
	}
	if c.newestID != "" && CompareIDs(id, c.newestID) <= 0 {
		return false
	}
	c.newestID = id
	c.updatedAt = now
	return true
}

// ExpireIfStale resets the cursor when it has not advanced within staleness.
// It returns true when the cursor was reset.
func (c *Cursor) ExpireIfStale(now time.Time, staleness time.Duration) bool {
	if c.newestID == "" || now.Sub(c.updatedAt) <= staleness {
		return false
	}
	c.newestID = ""
	c.updatedAt = time.Time{}
	return true
}

// SearchFloor is the earliest creation time a time-floor search may ask for:
// now minus the lookback window, but never before the process start minus the
// safety margin.
func SearchFloor(now, processStart time.Time, lookback, margin time.Duration) time.Time {
	floor := now.Add(-lookback)
	clamp := processStart.Add(-margin)
	if floor.Before(clamp) {
		return clamp
	}
	return floor
}

// CompareIDs compares two decimal post ids as unsigned 64-bit integers. Ids
// that do not parse fall back to comparing by length, then lexically, which
// matches numeric order for canonical decimal strings.
func CompareIDs(a, b string) int {
	x, errA := strconv.ParseUint(a, 10, 64)
	y, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
