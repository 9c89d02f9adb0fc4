package testutil

import "time"

// DrawTime is a fixed kickoff used wherever a draw needs a deterministic
// creation time.
var DrawTime = MustParseRFC3339("2024-06-01T19:00:00Z")

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// DrawClock returns a clock stopped at DrawTime.
func DrawClock() func() time.Time {
	return NowAt(DrawTime)
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
