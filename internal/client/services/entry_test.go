package services

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_LoadEmpty(t *testing.T) {
	s := newTestEntries(kv.NewMemoryStore(), newClock())
	got, err := s.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntryService_LoadNormalizes(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	clock := newClock()
	nowMs := clock.Now().UnixMilli()

	raw := `[
		{"id":"a","date":"2024-03-01","mood":99,"stress":-5,"sleep":"7","journal":"ok","createdAt":1,"updatedAt":2},
		"garbage",
		null,
		{"date":"2024-03-05","mood":2.6,"stress":"lots","journal":12},
		{}
	]`
	require.NoError(t, store.Set(ctx, common.EntriesKey("u1"), []byte(raw)))

	s := newTestEntries(store, clock)
	got, err := s.Load(ctx, "u1")
	require.NoError(t, err)

	want := []models.CheckInEntry{
		{ID: "entry-2", Date: "2024-03-10", Mood: 3, Stress: 5, Sleep: 5, Journal: "", CreatedAt: nowMs, UpdatedAt: nowMs},
		{ID: "entry-1", Date: "2024-03-05", Mood: 3, Stress: 5, Sleep: 5, Journal: "12", CreatedAt: nowMs, UpdatedAt: nowMs},
		{ID: "a", Date: "2024-03-01", Mood: 5, Stress: 0, Sleep: 7, Journal: "ok", CreatedAt: 1, UpdatedAt: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryService_LoadNonArray(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := newTestEntries(store, newClock())

	for _, raw := range []string{`{"id":"a"}`, `not json`, `42`} {
		require.NoError(t, store.Set(ctx, common.EntriesKey("u1"), []byte(raw)))
		got, err := s.Load(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, got, raw)
	}
}

func TestEntryService_EntriesArePerUser(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := newTestEntries(store, newClock())

	require.NoError(t, s.Save(ctx, "u1", []models.CheckInEntry{{ID: "a", Date: "2024-03-01", Mood: 3}}))

	got, err := s.Load(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEntryService_SaveClamps(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := newTestEntries(store, newClock())

	in := []models.CheckInEntry{{ID: "a", Date: "2024-03-01", Mood: 7, Stress: 12, Sleep: -1}}
	require.NoError(t, s.Save(ctx, "u1", in))
	assert.Equal(t, 7, in[0].Mood, "input must not change")

	raw, err := store.Get(ctx, common.EntriesKey("u1"))
	require.NoError(t, err)

	var stored []models.CheckInEntry
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, 5, stored[0].Mood)
	assert.Equal(t, 10, stored[0].Stress)
	assert.Equal(t, 0, stored[0].Sleep)
}

func TestEntryService_UpsertNew(t *testing.T) {
	clock := newClock()
	s := newTestEntries(kv.NewMemoryStore(), clock)

	existing := []models.CheckInEntry{{ID: "old", Date: "2024-03-09", Mood: 2, CreatedAt: 1, UpdatedAt: 1}}
	got := s.Upsert(existing, models.CheckInEntry{Date: "2024-03-01", Mood: 4})

	require.Len(t, got, 2)
	assert.Len(t, existing, 1, "input must not change")
	assert.Equal(t, "entry-1", got[0].ID)
	assert.Equal(t, clock.Now().UnixMilli(), got[0].CreatedAt)
	assert.Equal(t, clock.Now().UnixMilli(), got[0].UpdatedAt)
	assert.Equal(t, "old", got[1].ID)
}

func TestEntryService_UpsertUnknownIDIsNew(t *testing.T) {
	s := newTestEntries(kv.NewMemoryStore(), newClock())
	got := s.Upsert(nil, models.CheckInEntry{ID: "given", Date: "2024-03-01", Mood: 4})
	require.Len(t, got, 1)
	assert.Equal(t, "given", got[0].ID)
}

func TestEntryService_UpsertExisting(t *testing.T) {
	clock := newClock()
	s := newTestEntries(kv.NewMemoryStore(), clock)

	existing := []models.CheckInEntry{
		{ID: "a", Date: "2024-03-09", Mood: 2, CreatedAt: 100, UpdatedAt: 100},
		{ID: "b", Date: "2024-03-08", Mood: 3, CreatedAt: 50, UpdatedAt: 50},
	}
	clock.Advance(time.Minute)
	got := s.Upsert(existing, models.CheckInEntry{ID: "b", Date: "2024-03-08", Mood: 5, Journal: "better"})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, models.CheckInEntry{
		ID: "b", Date: "2024-03-08", Mood: 5, Journal: "better",
		CreatedAt: 50, UpdatedAt: clock.Now().UnixMilli(),
	}, got[1])
	assert.Equal(t, 3, existing[1].Mood, "input must not change")
}

func TestEntryService_Delete(t *testing.T) {
	s := newTestEntries(kv.NewMemoryStore(), newClock())

	base := []models.CheckInEntry{
		{ID: "a", Date: "2024-03-09"},
		{ID: "b", Date: "2024-03-08"},
	}
	withNew := s.Upsert(base, models.CheckInEntry{Date: "2024-03-07", Mood: 3})
	e := withNew[0]

	got := s.Delete(withNew, e.ID)
	assert.Equal(t, base, got)

	assert.Equal(t, base, s.Delete(base, "missing"))
}

func TestEntryService_Query(t *testing.T) {
	s := newTestEntries(kv.NewMemoryStore(), newClock())
	entries := []models.CheckInEntry{
		{ID: "a", Date: "2024-03-09", Journal: "Long WALK outside"},
		{ID: "b", Date: "2024-02-08", Journal: "tired"},
		{ID: "c", Date: "2024-03-01", Journal: "Straße"},
	}

	ids := func(search string) []string {
		var out []string
		for e := range s.Query(entries, MatchText(search)) {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(""))
	assert.Equal(t, []string{"a"}, ids("walk"))
	assert.Equal(t, []string{"a", "c"}, ids("2024-03"))
	assert.Equal(t, []string{"c"}, ids("STRASSE"))
	assert.Empty(t, ids("nothing"))

	var first []string
	for e := range s.Query(entries, MatchText("")) {
		first = append(first, e.ID)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}

func TestEntryService_RecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	clock := newClock()
	s := newTestEntries(store, clock)

	entries, err := s.Record(ctx, "u1", nil, models.CheckInEntry{Date: "2024-03-01", Mood: 2, Stress: 4, Sleep: 6, Journal: "meh"})
	require.NoError(t, err)
	entries, err = s.Record(ctx, "u1", entries, models.CheckInEntry{Date: "2024-03-05", Mood: 4})
	require.NoError(t, err)
	entries, err = s.Record(ctx, "u1", entries, models.CheckInEntry{Date: "2024-03-03", Mood: 3})
	require.NoError(t, err)

	dates := func(es []models.CheckInEntry) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.Date
		}
		return out
	}
	assert.Equal(t, []string{"2024-03-05", "2024-03-03", "2024-03-01"}, dates(entries))

	loaded, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	if diff := cmp.Diff(entries, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	loaded, err = s.Remove(ctx, "u1", loaded, loaded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-05", "2024-03-01"}, dates(loaded))

	require.NoError(t, s.Clear(ctx, "u1"))
	loaded, err = s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, loaded)

	raw, err := store.Get(ctx, common.EntriesKey("u1"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSortByDate_StableOnTies(t *testing.T) {
	entries := []models.CheckInEntry{
		{ID: "a", Date: "2024-03-01"},
		{ID: "b", Date: "2024-03-05"},
		{ID: "c", Date: "2024-03-01"},
		{ID: "d", Date: "2024-03-05"},
	}
	SortByDate(entries)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestFind(t *testing.T) {
	entries := []models.CheckInEntry{{ID: "a"}, {ID: "b"}}

	e, err := Find(entries, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", e.ID)

	_, err = Find(entries, "z")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.False(t, slices.ContainsFunc(entries, func(e models.CheckInEntry) bool { return e.ID == "z" }))
}
