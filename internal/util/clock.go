// internal/util/clock.go
// Abstraksi waktu supaya timestamp di handler bisa dites

package util

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ClockFunc adapter fungsi biasa ke Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ISO8601 format milidetik UTC, contoh 2024-05-01T10:00:00.000Z
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Timestamp mengembalikan waktu sekarang dari clock dalam format ISO8601 (UTC).
func Timestamp(c Clock) string {
	if c == nil {
		c = RealClock{}
	}
	return c.Now().UTC().Format(ISO8601)
}
