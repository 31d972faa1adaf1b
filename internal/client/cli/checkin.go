package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/stats"
)

// CheckIn records a new entry. The form starts from today's date and the
// default scores.
func (a *App) CheckIn(ctx context.Context) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}

	blank := models.CheckInEntry{
		Date:   stats.Today(a.now()),
		Mood:   models.DefaultMood,
		Stress: models.DefaultStress,
		Sleep:  models.DefaultSleep,
	}
	form, err := a.fillForm(blank)
	if err != nil {
		return err
	}
	return a.save(ctx, u.ID, form, "Check-in saved.")
}

// Edit changes an existing entry. The current values are offered as
// defaults; id and createdAt are kept.
func (a *App) Edit(ctx context.Context, id string) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}

	current, err := services.Find(a.journal, id)
	if err != nil {
		return a.report(ctx, err)
	}
	form, err := a.fillForm(current)
	if err != nil {
		return err
	}
	form.ID = current.ID
	return a.save(ctx, u.ID, form, "Check-in updated.")
}

func (a *App) save(ctx context.Context, userID string, form services.CheckInForm, done string) error {
	entry, err := form.Entry()
	if err != nil {
		return a.report(ctx, err)
	}
	journal, err := a.entries.Record(ctx, userID, a.journal, entry)
	if err != nil {
		return a.report(ctx, err)
	}
	a.journal = journal
	a.alerts.show(done)
	return nil
}

// fillForm prompts for every field, using from for the defaults. Journal
// input replaces the old text only when something was typed.
func (a *App) fillForm(from models.CheckInEntry) (services.CheckInForm, error) {
	var form services.CheckInForm

	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD) ["+from.Date+"]", a.out)
	if err != nil {
		return form, err
	}
	if date == "" {
		date = from.Date
	}

	mood, err := a.getInt("Mood 1-5", from.Mood, 0)
	if err != nil {
		return form, err
	}
	stress, err := a.getInt("Stress 0-10", from.Stress, models.DefaultStress)
	if err != nil {
		return form, err
	}
	sleep, err := a.getInt("Sleep quality 0-10", from.Sleep, models.DefaultSleep)
	if err != nil {
		return form, err
	}

	prompt := "Journal (optional)"
	if from.Journal != "" {
		prompt += "\ncurrent: " + strings.ReplaceAll(from.Journal, "\n", " / ") + "\n(leave empty to keep)"
	}
	journal, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return form, err
	}
	if journal == "" {
		journal = from.Journal
	}

	return services.CheckInForm{
		Date:    date,
		Mood:    mood,
		Stress:  stress,
		Sleep:   sleep,
		Journal: journal,
	}, nil
}

// Delete removes an entry after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}
	if _, err := services.Find(a.journal, id); err != nil {
		return a.report(ctx, err)
	}

	if !a.confirm(ctx, "Delete entry", "This will permanently remove this check-in from this device.") {
		return nil
	}

	journal, err := a.entries.Remove(ctx, u.ID, a.journal, id)
	if err != nil {
		return a.report(ctx, err)
	}
	a.journal = journal
	a.alerts.show("Entry deleted.")
	return nil
}

// Clear removes every entry of the user after confirmation.
func (a *App) Clear(ctx context.Context) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}

	if !a.confirm(ctx, "Clear all data", "This will delete all saved check-ins from this device.") {
		return nil
	}

	if err := a.entries.Clear(ctx, u.ID); err != nil {
		return a.report(ctx, err)
	}
	a.journal = nil
	a.alerts.show("All entries cleared.")
	return nil
}
