package journal

import (
	"github.com/akeil/journal/internal/errors"
	"github.com/akeil/journal/internal/logging"
)

// Store is the in-memory, ordered collection of journal entries.
//
// New entries are added at the front; updates keep the position.
// A Store is not safe for concurrent use.
type Store struct {
	entries []Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make([]Entry, 0),
	}
}

// Create adds the given entry as the first element.
//
// Returns an error if an entry with the same ID exists.
func (s *Store) Create(e Entry) error {
	if s.index(e.ID) != -1 {
		return errors.NewDuplicateID(e.ID)
	}

	s.entries = append([]Entry{e}, s.entries...)
	logging.Debug("Created entry %q, %d entries", e.ID, len(s.entries))
	return nil
}

// Update replaces title, content, date and config of the entry with the
// given id.
func (s *Store) Update(id string, p Patch) error {
	i := s.index(id)
	if i == -1 {
		return errors.NewNotFound("no entry with id %q", id)
	}

	s.entries[i] = Entry{
		ID:      id,
		Title:   p.Title,
		Content: p.Content,
		Date:    p.Date,
		Config:  p.Config,
	}
	logging.Debug("Updated entry %q at position %d", id, i)
	return nil
}

// Remove deletes the entry with the given id.
// Removing an unknown id does nothing.
func (s *Store) Remove(id string) {
	i := s.index(id)
	if i == -1 {
		return
	}

	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	logging.Debug("Removed entry %q", id)
}

// Get looks up a single entry.
func (s *Store) Get(id string) (Entry, error) {
	i := s.index(id)
	if i == -1 {
		return Entry{}, errors.NewNotFound("no entry with id %q", id)
	}
	return s.entries[i], nil
}

// List returns a copy of all entries in their current order.
func (s *Store) List() []Entry {
	l := make([]Entry, len(s.entries))
	copy(l, s.entries)
	return l
}

// Len is the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) index(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
