package models

// Scale bounds and defaults used when an entry is normalized.
const (
	MoodMin = 1
	MoodMax = 5

	StressMin = 0
	StressMax = 10

	SleepMin = 0
	SleepMax = 10

	DefaultMood   = 3
	DefaultStress = 5
	DefaultSleep  = 5
)

// CheckInEntry is one daily record. Date is a local calendar day in
// YYYY-MM-DD form; several entries may share a date.
type CheckInEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Mood    int    `json:"mood"`
	Stress  int    `json:"stress"`
	Sleep   int    `json:"sleep"`
	Journal string `json:"journal"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Clamped returns a copy of e with every score forced into its range.
func (e CheckInEntry) Clamped() CheckInEntry {
	e.Mood = Clamp(e.Mood, MoodMin, MoodMax)
	e.Stress = Clamp(e.Stress, StressMin, StressMax)
	e.Sleep = Clamp(e.Sleep, SleepMin, SleepMax)
	return e
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// DateLayout is the calendar day format used for CheckInEntry.Date.
const DateLayout = "2006-01-02"
