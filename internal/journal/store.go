package journal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrPersistence marks an append whose durable write failed. The entry
// is already in memory and remains authoritative for the process
// lifetime; callers may surface a warning but must not retry the append.
var ErrPersistence = errors.New("journal: persistence write failed")

// Store owns the append-only check-in log. The in-memory slice is kept
// most-recent-first for display; range queries re-sort by timestamp.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	repo    Repository
	seq     int64
	version uint64
}

// NewStore rehydrates a store from the repository. A missing or corrupt
// payload yields an empty store; rehydration never fails construction.
func NewStore(repo Repository) *Store {
	if repo == nil {
		repo = NopRepository{}
	}
	entries, err := repo.Load()
	if err != nil {
		entries = nil
	}
	return &Store{entries: entries, repo: repo}
}

// Append validates the score, inserts a new entry at the head of the
// log and synchronously writes the whole log to the repository. If only
// the durable write fails, the entry is still returned together with an
// error wrapping ErrPersistence.
func (s *Store) Append(score int, note string, at time.Time) (Entry, error) {
	if !validScore(score) {
		return Entry{}, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	s.mu.Lock()
	s.seq++
	e := Entry{
		ID:        fmt.Sprintf("%d-%d", time.Now().UnixMilli(), s.seq),
		Timestamp: at.UnixMilli(),
		Score:     score,
		Note:      note,
		Tags:      []string{},
	}
	s.entries = append([]Entry{e}, s.entries...)
	s.version++
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	// The write happens under the lock so snapshots reach the
	// repository in append order.
	err := s.repo.Save(snapshot)
	s.mu.Unlock()

	if err != nil {
		return e, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return e, nil
}

// All returns the log in insertion order, most recent first.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// InRange returns entries with timestamp in [start, end), ordered by
// timestamp ascending.
func (s *Store) InRange(start, end time.Time) []Entry {
	s.mu.RLock()
	var out []Entry
	for _, e := range s.entries {
		t := e.Time()
		if !t.Before(start) && t.Before(end) {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	sortByTimestamp(out)
	return out
}

// Recent returns the last n entries by attributed timestamp, ordered
// ascending. It is the window shape both charting and insight use.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	s.mu.RUnlock()

	sortByTimestamp(out)
	if n > 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// HasEntryOn reports whether any entry is attributed to the given
// calendar day in day's location.
func (s *Store) HasEntryOn(day time.Time) bool {
	y, m, d := day.Date()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		ey, em, ed := e.Time().In(day.Location()).Date()
		if ey == y && em == m && ed == d {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Version increments on every append. Derived views may use it as a
// cache key.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func sortByTimestamp(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
