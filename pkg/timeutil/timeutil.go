// Package timeutil converts between Unix epochs and ISO 8601 "Zulu" strings
// as they appear in GitHub payloads, rate-limit headers and allocator files.
package timeutil

import (
	"time"
)

// secondsThreshold separates epochs given in seconds from epochs given in
// milliseconds. Anything at or below it is read as seconds.
const secondsThreshold = 1e12

// zuluLayout is ISO 8601 in UTC with millisecond precision, e.g. 2025-05-15T17:25:32.000Z.
const zuluLayout = "2006-01-02T15:04:05.000Z07:00"

// FromEpoch converts an epoch in seconds or milliseconds to a UTC time
// truncated to the second. A zero epoch yields the zero time.
func FromEpoch(epoch int64) time.Time {
	if epoch == 0 {
		return time.Time{}
	}

	if epoch > secondsThreshold {
		return time.UnixMilli(epoch).UTC().Truncate(time.Second)
	}

	return time.Unix(epoch, 0).UTC()
}

// EpochToZulu formats an epoch in seconds or milliseconds as a Zulu string.
// Zero returns an empty string.
func EpochToZulu(epoch int64) string {
	t := FromEpoch(epoch)
	if t.IsZero() {
		return ""
	}

	return t.Format(zuluLayout)
}

// ToZulu formats t as a Zulu string, or returns "" for the zero time.
func ToZulu(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Truncate(time.Second).Format(zuluLayout)
}

// ZuluToEpoch parses an ISO 8601 timestamp and returns seconds since the Unix
// epoch. Empty or unparsable input returns 0.
func ZuluToEpoch(zulu string) int64 {
	if zulu == "" {
		return 0
	}

	t, err := time.Parse(time.RFC3339Nano, zulu)
	if err != nil {
		return 0
	}

	return t.Unix()
}
