package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/stats"
)

// gap marks a missing value in tables and averages.
const gap = "—"

// List prints the journal, newest first. A non-empty search keeps entries
// whose journal or date contains it.
func (a *App) List(ctx context.Context, search string) error {
	if _, ok, err := a.requireUser(ctx); !ok {
		return err
	}

	n := 0
	for e := range a.entries.Query(a.journal, services.MatchText(search)) {
		a.printEntry(e)
		n++
	}
	if n == 0 {
		if strings.TrimSpace(search) != "" {
			fmt.Fprintln(a.out, "No matching check-ins.")
		} else {
			fmt.Fprintln(a.out, "No check-ins yet. Use 'checkin' to add one.")
		}
	}
	return nil
}

func (a *App) printEntry(e models.CheckInEntry) {
	fmt.Fprintf(a.out, "%s %s  Mood: %d (%s)  Stress: %d/10  Sleep: %d/10  [%s]\n",
		stats.WeekdayLabel(e.Date), e.Date, e.Mood, stats.MoodLabel(e.Mood), e.Stress, e.Sleep, e.ID)
	if e.Journal != "" {
		for _, line := range strings.Split(e.Journal, "\n") {
			fmt.Fprintln(a.out, "    "+line)
		}
	}
}

// Week prints the last seven days, one row per day, followed by the
// averages. Days without a check-in are shown as gaps.
func (a *App) Week(ctx context.Context) error {
	if _, ok, err := a.requireUser(ctx); !ok {
		return err
	}

	series, err := stats.WeeklySeries(a.journal, stats.Today(a.now()))
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "%-14s %-7s %-8s %-7s\n", "Day", "Mood", "Stress", "Sleep")
	for i, day := range series.Days {
		fmt.Fprintf(a.out, "%-14s %-7s %-8s %-7s %s\n",
			stats.WeekdayLabel(day)+" "+day[5:],
			cell(series.Mood[i]), cell(series.Stress[i]), cell(series.Sleep[i]),
			bar(series.Mood[i]))
	}

	sum := stats.Summarize(series)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Avg mood:   %s\n", avgText(sum.Mood, sum.HasMood, models.MoodMax))
	fmt.Fprintf(a.out, "Avg stress: %s\n", avgText(sum.Stress, sum.HasStress, models.StressMax))
	fmt.Fprintf(a.out, "Avg sleep:  %s\n", avgText(sum.Sleep, sum.HasSleep, models.SleepMax))
	return nil
}

func cell(v *int) string {
	if v == nil {
		return gap
	}
	return fmt.Sprint(*v)
}

func bar(mood *int) string {
	if mood == nil {
		return ""
	}
	return strings.Repeat("#", *mood)
}

func avgText(v float64, ok bool, scale int) string {
	if !ok {
		return gap
	}
	return fmt.Sprintf("%.1f / %d", v, scale)
}

// Quote prints the quote of the day.
func (a *App) Quote(ctx context.Context) error {
	a.printQuote()
	return nil
}

func (a *App) printQuote() {
	q := stats.DailyQuote(stats.Today(a.now()))
	fmt.Fprintf(a.out, "%q\n  - %s\n", q.Text, q.Author)
}
