package services

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
	"golang.org/x/text/cases"
)

// EntryService stores the check-in collection of each user under
// common.EntriesKey(userID). The collection functions (Upsert, Delete,
// Query) never modify their input and return fresh slices.
type EntryService struct {
	store kv.Store
	log   logging.Logger

	now   func() time.Time
	newID func() string
}

func NewEntryService(store kv.Store, log logging.Logger) *EntryService {
	return &EntryService{store: store, log: log, now: time.Now, newID: common.NewID}
}

// Load returns the user's entries sorted by date, newest first. Stored
// data is repaired rather than rejected: non-object elements are dropped,
// missing or malformed fields get defaults and scores are clamped. Only a
// storage failure produces an error.
func (s *EntryService) Load(ctx context.Context, userID string) ([]models.CheckInEntry, error) {
	raw, err := s.store.Get(ctx, common.EntriesKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	records, skipped := decodeRecords(raw)
	if skipped > 0 {
		s.log.Warn(ctx, "dropped malformed entries", "user_id", userID, "count", skipped)
	}

	entries := make([]models.CheckInEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, s.normalize(r))
	}
	SortByDate(entries)
	return entries, nil
}

// normalize builds a valid entry from a decoded record.
func (s *EntryService) normalize(r map[string]any) models.CheckInEntry {
	now := s.now()
	ms := timex.UnixMilli(now)

	id := asString(r["id"], "")
	if id == "" {
		id = s.newID()
	}

	return models.CheckInEntry{
		ID:        id,
		Date:      asString(r["date"], now.Format(models.DateLayout)),
		Mood:      asInt(r["mood"], models.DefaultMood, models.MoodMin, models.MoodMax),
		Stress:    asInt(r["stress"], models.DefaultStress, models.StressMin, models.StressMax),
		Sleep:     asInt(r["sleep"], models.DefaultSleep, models.SleepMin, models.SleepMax),
		Journal:   asString(r["journal"], ""),
		CreatedAt: asMillis(r["createdAt"], ms),
		UpdatedAt: asMillis(r["updatedAt"], ms),
	}
}

// Save overwrites the user's whole collection. Scores are clamped on the
// way out.
func (s *EntryService) Save(ctx context.Context, userID string, entries []models.CheckInEntry) error {
	out := make([]models.CheckInEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clamped()
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := s.store.Set(ctx, common.EntriesKey(userID), data); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}

	s.log.Debug(ctx, "entries saved", "user_id", userID, "count", len(out))
	return nil
}

// Upsert replaces the entry with the same id, keeping its CreatedAt and
// stamping UpdatedAt, or prepends entry as new with both timestamps set.
// An entry without an id gets a fresh one. The result is not re-sorted.
func (s *EntryService) Upsert(entries []models.CheckInEntry, entry models.CheckInEntry) []models.CheckInEntry {
	ms := timex.UnixMilli(s.now())

	if entry.ID != "" {
		if idx := slices.IndexFunc(entries, func(e models.CheckInEntry) bool { return e.ID == entry.ID }); idx >= 0 {
			next := slices.Clone(entries)
			entry.CreatedAt = entries[idx].CreatedAt
			entry.UpdatedAt = ms
			next[idx] = entry
			return next
		}
	} else {
		entry.ID = s.newID()
	}

	entry.CreatedAt, entry.UpdatedAt = ms, ms
	next := make([]models.CheckInEntry, 0, len(entries)+1)
	next = append(next, entry)
	return append(next, entries...)
}

// Delete returns entries without the one whose id matches. An unknown id
// yields an unchanged copy.
func (s *EntryService) Delete(entries []models.CheckInEntry, id string) []models.CheckInEntry {
	next := make([]models.CheckInEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next
}

// Query lazily yields the entries accepted by pred, in order.
func (s *EntryService) Query(entries []models.CheckInEntry, pred func(models.CheckInEntry) bool) iter.Seq[models.CheckInEntry] {
	return func(yield func(models.CheckInEntry) bool) {
		for _, e := range entries {
			if pred(e) && !yield(e) {
				return
			}
		}
	}
}

// Record upserts entry, re-sorts and persists the collection. It returns
// the new collection.
func (s *EntryService) Record(ctx context.Context, userID string, entries []models.CheckInEntry, entry models.CheckInEntry) ([]models.CheckInEntry, error) {
	next := s.Upsert(entries, entry)
	SortByDate(next)
	if err := s.Save(ctx, userID, next); err != nil {
		return entries, err
	}
	return next, nil
}

// Remove deletes id and persists the collection.
func (s *EntryService) Remove(ctx context.Context, userID string, entries []models.CheckInEntry, id string) ([]models.CheckInEntry, error) {
	next := s.Delete(entries, id)
	if err := s.Save(ctx, userID, next); err != nil {
		return entries, err
	}
	return next, nil
}

// Clear persists an empty collection for the user.
func (s *EntryService) Clear(ctx context.Context, userID string) error {
	return s.Save(ctx, userID, nil)
}

// Find returns the entry with the given id or common.ErrorNotFound.
func Find(entries []models.CheckInEntry, id string) (models.CheckInEntry, error) {
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.CheckInEntry{}, common.ErrorNotFound
}

// SortByDate orders entries by date descending. Entries sharing a date
// keep their relative order.
func SortByDate(entries []models.CheckInEntry) {
	slices.SortStableFunc(entries, func(a, b models.CheckInEntry) int {
		return strings.Compare(b.Date, a.Date)
	})
}

// MatchText returns a predicate accepting entries whose journal contains
// search, ignoring case, or whose date contains it. A blank search
// accepts everything.
func MatchText(search string) func(models.CheckInEntry) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return func(models.CheckInEntry) bool { return true }
	}
	needle := cases.Fold().String(search)
	return func(e models.CheckInEntry) bool {
		return strings.Contains(cases.Fold().String(e.Journal), needle) ||
			strings.Contains(e.Date, search)
	}
}
