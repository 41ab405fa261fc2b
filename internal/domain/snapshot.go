package domain

import "time"

// TimestampLayout renders timestamps as MM/DD/YYYY, HH:MM:SS in snapshots.
const TimestampLayout = "01/02/2006, 15:04:05"

// FormatTimestamp formats t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
