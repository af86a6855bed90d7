package editor

import "github.com/google/uuid"

// Entry is one row of an edited list. Two entries with the same title are
// still different rows.
type Entry struct {
	ID    string
	Title string
}

// NewEntry creates an entry with a fresh ID.
func NewEntry(title string) Entry {
	return Entry{ID: uuid.NewString(), Title: title}
}

// Entries wraps each title in a new entry.
func Entries(titles ...string) []Entry {
	out := make([]Entry, 0, len(titles))
	for _, t := range titles {
		out = append(out, NewEntry(t))
	}
	return out
}

func (e Entry) String() string {
	return e.Title
}
