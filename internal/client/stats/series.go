package stats

import "github.com/dmitrijs2005/moodkeeper/internal/client/models"

// WeekLength is the number of days in the dashboard series.
const WeekLength = 7

// Series holds one value per day. A nil element marks a day without a
// check-in.
type Series struct {
	Days   []string
	Mood   []*int
	Stress []*int
	Sleep  []*int
}

// WeeklySeries builds the series for the seven days ending on todayISO.
// When several entries share a date, the one updated last wins.
func WeeklySeries(entries []models.CheckInEntry, todayISO string) (Series, error) {
	days, err := LastNDays(WeekLength, todayISO)
	if err != nil {
		return Series{}, err
	}

	latest := make(map[string]models.CheckInEntry, len(entries))
	for _, e := range entries {
		if prev, ok := latest[e.Date]; !ok || e.UpdatedAt > prev.UpdatedAt {
			latest[e.Date] = e
		}
	}

	s := Series{
		Days:   days,
		Mood:   make([]*int, len(days)),
		Stress: make([]*int, len(days)),
		Sleep:  make([]*int, len(days)),
	}
	for i, d := range days {
		e, ok := latest[d]
		if !ok {
			continue
		}
		s.Mood[i], s.Stress[i], s.Sleep[i] = ptr(e.Mood), ptr(e.Stress), ptr(e.Sleep)
	}
	return s, nil
}

// Average is the mean of the non-nil values. ok is false when there are
// none.
func Average(values []*int) (avg float64, ok bool) {
	var sum, n int
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Summary holds the three weekly averages.
type Summary struct {
	Mood   float64
	Stress float64
	Sleep  float64

	HasMood   bool
	HasStress bool
	HasSleep  bool
}

// Summarize averages every metric of s.
func Summarize(s Series) Summary {
	var sum Summary
	sum.Mood, sum.HasMood = Average(s.Mood)
	sum.Stress, sum.HasStress = Average(s.Stress)
	sum.Sleep, sum.HasSleep = Average(s.Sleep)
	return sum
}

// MoodLabel names a point on the mood scale.
func MoodLabel(mood int) string {
	switch {
	case mood <= 1:
		return "Very low"
	case mood == 2:
		return "Low"
	case mood == 3:
		return "Okay"
	case mood == 4:
		return "Good"
	default:
		return "Great"
	}
}

func ptr(v int) *int { return &v }
