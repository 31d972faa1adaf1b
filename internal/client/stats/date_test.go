package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastNDays(t *testing.T) {
	tests := []struct {
		name string
		n    int
		from string
		want []string
	}{
		{"within month", 3, "2024-03-10", []string{"2024-03-08", "2024-03-09", "2024-03-10"}},
		{"month rollover", 3, "2024-03-01", []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"year rollover", 7, "2024-01-03", []string{
			"2023-12-28", "2023-12-29", "2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03",
		}},
		{"single day", 1, "2024-05-05", []string{"2024-05-05"}},
		{"lenient input", 2, "2024-3-1", []string{"2024-02-29", "2024-03-01"}},
		{"zero", 0, "2024-05-05", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LastNDays(tt.n, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLastNDays_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Riga")
	if err != nil {
		t.Skip("timezone data not available")
	}
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })

	got, err := LastNDays(3, "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-29", "2024-03-30", "2024-03-31"}, got)

	got, err = LastNDays(3, "2024-10-28")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-10-26", "2024-10-27", "2024-10-28"}, got)
}

func TestLastNDays_InvalidDate(t *testing.T) {
	_, err := LastNDays(7, "yesterday")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-03-10", Today(now))
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayLabel("2024-03-10"))
	assert.Equal(t, "Mon", WeekdayLabel("2024-01-01"))
	assert.Equal(t, "bogus", WeekdayLabel("bogus"))
}
