package stats

import (
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(ps []*int) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		if p != nil {
			out[i] = *p
		}
	}
	return out
}

func TestWeeklySeries_Gaps(t *testing.T) {
	entries := []models.CheckInEntry{
		{ID: "a", Date: "2024-03-08", Mood: 4, Stress: 2, Sleep: 7},
		{ID: "b", Date: "2024-03-04", Mood: 2, Stress: 8, Sleep: 5},
		{ID: "old", Date: "2024-02-01", Mood: 1},
	}

	s, err := WeeklySeries(entries, "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10",
	}, s.Days)
	assert.Equal(t, []any{2, nil, nil, nil, 4, nil, nil}, values(s.Mood))
	assert.Equal(t, []any{8, nil, nil, nil, 2, nil, nil}, values(s.Stress))
	assert.Equal(t, []any{5, nil, nil, nil, 7, nil, nil}, values(s.Sleep))

	avg, ok := Average(s.Mood)
	require.True(t, ok)
	assert.InDelta(t, 3.0, avg, 1e-9)
}

func TestWeeklySeries_LatestUpdateWins(t *testing.T) {
	entries := []models.CheckInEntry{
		{ID: "a", Date: "2024-01-01", Mood: 3, UpdatedAt: 100},
		{ID: "b", Date: "2024-01-01", Mood: 5, UpdatedAt: 200},
		{ID: "c", Date: "2024-01-01", Mood: 1, UpdatedAt: 150},
	}

	s, err := WeeklySeries(entries, "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, s.Mood[6])
	assert.Equal(t, 5, *s.Mood[6])
}

func TestWeeklySeries_InvalidToday(t *testing.T) {
	_, err := WeeklySeries(nil, "")
	assert.Error(t, err)
}

func TestAverage(t *testing.T) {
	one, three := 1, 3

	_, ok := Average(nil)
	assert.False(t, ok)

	_, ok = Average([]*int{nil, nil})
	assert.False(t, ok)

	zero := 0
	avg, ok := Average([]*int{&zero})
	assert.True(t, ok, "zero is a value, not a gap")
	assert.Equal(t, 0.0, avg)

	avg, ok = Average([]*int{&one, nil, &three})
	assert.True(t, ok)
	assert.Equal(t, 2.0, avg)
}

func TestSummarize(t *testing.T) {
	entries := []models.CheckInEntry{
		{Date: "2024-03-10", Mood: 4, Stress: 3, Sleep: 6},
		{Date: "2024-03-09", Mood: 5, Stress: 4, Sleep: 9},
	}
	s, err := WeeklySeries(entries, "2024-03-10")
	require.NoError(t, err)

	sum := Summarize(s)
	assert.True(t, sum.HasMood)
	assert.InDelta(t, 4.5, sum.Mood, 1e-9)
	assert.InDelta(t, 3.5, sum.Stress, 1e-9)
	assert.InDelta(t, 7.5, sum.Sleep, 1e-9)

	empty := Summarize(Series{})
	assert.False(t, empty.HasMood)
	assert.False(t, empty.HasStress)
	assert.False(t, empty.HasSleep)
}

func TestMoodLabel(t *testing.T) {
	want := map[int]string{0: "Very low", 1: "Very low", 2: "Low", 3: "Okay", 4: "Good", 5: "Great", 9: "Great"}
	for mood, label := range want {
		assert.Equal(t, label, MoodLabel(mood), "mood %d", mood)
	}
}
