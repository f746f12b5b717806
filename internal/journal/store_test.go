package journal

import (
	"errors"
	"testing"
	"time"
)

func TestStoreAppendValidScores(t *testing.T) {
	s := NewStore(nil)
	seen := map[string]bool{}

	for score := 1; score <= 5; score++ {
		before := s.Len()
		e, err := s.Append(score, "", time.Now())
		if err != nil {
			t.Fatalf("append score %d: %v", score, err)
		}
		if e.Score != score {
			t.Fatalf("want score %d, got %d", score, e.Score)
		}
		if e.ID == "" || seen[e.ID] {
			t.Fatalf("id not unique: %q", e.ID)
		}
		seen[e.ID] = true
		if s.Len() != before+1 {
			t.Fatalf("append did not grow log: %d -> %d", before, s.Len())
		}
		if e.Tags == nil {
			t.Fatalf("tags must be present, got nil")
		}
	}
}

func TestStoreAppendInvalidScore(t *testing.T) {
	s := NewStore(nil)
	for _, score := range []int{0, 6, -1, 100} {
		if _, err := s.Append(score, "", time.Now()); !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: want ErrInvalidScore, got %v", score, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("invalid appends must not mutate the log, len=%d", s.Len())
	}
}

func TestStoreAllMostRecentFirst(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.Append(3, "first", time.Now()); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(4, "second", time.Now()); err != nil {
		t.Fatalf("append: %v", err)
	}

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("want 2 entries, got %d", len(all))
	}
	if all[0].Note != "second" || all[1].Note != "first" {
		t.Fatalf("insertion order not most-recent-first: %+v", all)
	}

	// Copy semantics: mutating the returned slice must not leak in.
	all[0].Note = "mutated"
	if s.All()[0].Note != "second" {
		t.Fatalf("internal state mutated via returned slice")
	}
}

func TestStoreInRangeSortsByTimestamp(t *testing.T) {
	s := NewStore(nil)
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	// Backdated entry inserted last: insertion order and timestamp
	// order disagree.
	if _, err := s.Append(3, "b", base.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(5, "c", base.AddDate(0, 0, 2)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(1, "a", base); err != nil {
		t.Fatalf("append: %v", err)
	}

	got := s.InRange(base, base.AddDate(0, 0, 2))
	if len(got) != 2 {
		t.Fatalf("want 2 entries in [start,end), got %d", len(got))
	}
	if got[0].Note != "a" || got[1].Note != "b" {
		t.Fatalf("range not sorted by timestamp ascending: %+v", got)
	}
}

func TestStoreRecentWindow(t *testing.T) {
	s := NewStore(nil)
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		if _, err := s.Append(3, "", base.AddDate(0, 0, i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent := s.Recent(7)
	if len(recent) != 7 {
		t.Fatalf("want 7 entries, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp < recent[i-1].Timestamp {
			t.Fatalf("recent window not ascending at %d", i)
		}
	}
	if got := recent[0].Time().UTC().Day(); got != 4 {
		t.Fatalf("window should start at day 4, got %d", got)
	}
}

func TestStoreHasEntryOn(t *testing.T) {
	s := NewStore(nil)
	day := time.Date(2026, 8, 15, 23, 45, 0, 0, time.UTC)
	if _, err := s.Append(4, "", day); err != nil {
		t.Fatalf("append: %v", err)
	}

	if !s.HasEntryOn(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected entry on Aug 15")
	}
	if s.HasEntryOn(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected entry on Aug 16")
	}
}

func TestStoreVersionIncrements(t *testing.T) {
	s := NewStore(nil)
	v0 := s.Version()
	if _, err := s.Append(3, "", time.Now()); err != nil {
		t.Fatalf("append: %v", err)
	}
	if s.Version() != v0+1 {
		t.Fatalf("version did not increment: %d -> %d", v0, s.Version())
	}
}

type failingRepo struct{}

func (failingRepo) Load() ([]Entry, error) { return nil, nil }
func (failingRepo) Save(e []Entry) error   { return errors.New("disk full") }

func TestStoreAppendPersistenceWarning(t *testing.T) {
	s := NewStore(failingRepo{})
	e, err := s.Append(2, "still counts", time.Now())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("want ErrPersistence, got %v", err)
	}
	if e.Score != 2 {
		t.Fatalf("entry not returned on persistence failure: %+v", e)
	}
	// In-memory state stays authoritative.
	if s.Len() != 1 || s.All()[0].Note != "still counts" {
		t.Fatalf("in-memory append lost: %+v", s.All())
	}
}
