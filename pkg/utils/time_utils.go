package utils

import "time"

// FormatRFC3339 renders a unix-seconds timestamp as a stable ISO string for
// API responses. Zero maps to the empty string.
func FormatRFC3339(unixSeconds int64) string {
	if unixSeconds == 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}

// FormatFriendly renders a unix-seconds timestamp for email bodies.
func FormatFriendly(unixSeconds int64) string {
	if unixSeconds == 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).Local().Format("Jan 2, 2006 at 3:04 PM")
}
