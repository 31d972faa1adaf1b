// Package stats derives what the dashboard shows from a user's check-ins:
// the last seven days as a series with gaps, averages, mood labels and the
// quote of the day. Everything here is pure and works on local calendar
// days.
package stats
