package ledger

import "sort"

// Store is an ordered collection of journal entries. Running-balance
// computation depends on the ordering (date ascending, ties broken by
// entry ID), which is established once at construction.
//
// A Store is treated as an immutable point-in-time snapshot for the
// duration of one request; concurrent reads need no locking. Append
// exists for the posting collaborator and must not race with readers.
type Store struct {
	entries []JournalEntry
	byID    map[string]int
}

// NewStore builds a store from the snapshot's entries. The input slice
// is not retained; entries with duplicate IDs keep the first occurrence.
func NewStore(entries []JournalEntry) *Store {
	s := &Store{byID: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if _, ok := s.byID[e.ID]; ok {
			continue
		}
		s.byID[e.ID] = 0 // reindexed below
		s.entries = append(s.entries, e)
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		a, b := s.entries[i], s.entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
	for i, e := range s.entries {
		s.byID[e.ID] = i
	}
	return s
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Contains reports whether an entry with the ID exists.
func (s *Store) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (JournalEntry, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return JournalEntry{}, false
	}
	return s.entries[idx], true
}

// Append inserts a new entry, keeping the date/ID ordering. A duplicate
// ID is a precondition violation and is rejected with ErrDuplicateEntry;
// this rejection is what makes re-posting a reconciled document a no-op
// failure instead of a double posting.
func (s *Store) Append(e JournalEntry) error {
	if e.ID == "" {
		return ErrEmptyEntryID
	}
	if _, ok := s.byID[e.ID]; ok {
		return ErrDuplicateEntry
	}
	pos := sort.Search(len(s.entries), func(i int) bool {
		cur := s.entries[i]
		if !cur.Date.Equal(e.Date) {
			return cur.Date.After(e.Date)
		}
		return cur.ID > e.ID
	})
	s.entries = append(s.entries, JournalEntry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e
	for i := pos; i < len(s.entries); i++ {
		s.byID[s.entries[i].ID] = i
	}
	return nil
}

// EntriesInPeriod returns entries whose date falls inside the period,
// in store order. The returned slice shares no structure with the
// store's internal state beyond the entries themselves.
func (s *Store) EntriesInPeriod(p Period) []JournalEntry {
	out := make([]JournalEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if p.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// AccountEntry is one journal leg matched to an account.
type AccountEntry struct {
	Entry JournalEntry
	Line  Line
	Side  Side
}

// EntriesForAccount returns every leg touching the account within the
// period, in store order. An entry referencing the account on both a
// debit and a credit line yields two rows, debit first.
func (s *Store) EntriesForAccount(accountID string, p Period) []AccountEntry {
	var out []AccountEntry
	for _, e := range s.entries {
		if !p.Contains(e.Date) {
			continue
		}
		for _, l := range e.Debits {
			if l.AccountID == accountID {
				out = append(out, AccountEntry{Entry: e, Line: l, Side: SideDebit})
			}
		}
		for _, l := range e.Credits {
			if l.AccountID == accountID {
				out = append(out, AccountEntry{Entry: e, Line: l, Side: SideCredit})
			}
		}
	}
	return out
}
