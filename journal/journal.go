package journal

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEntryPositionOutOfRange is returned when removing an entry at a position that does not exist.
var ErrEntryPositionOutOfRange = errors.New("entry position out of range")

// Journal manages a list of numbered text entries. Entry numbers keep
// counting up over the lifetime of the journal; removing an entry does not
// renumber the remaining ones.
//
// A Journal is not safe for concurrent use.
type Journal struct {
	entries []string
	count   int
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{entries: make([]string, 0)}
}

// AddEntry appends a note to the journal and returns its entry number, starting at 1.
func (j *Journal) AddEntry(note string) int {
	j.count++
	j.entries = append(j.entries, fmt.Sprintf("%d. %s", j.count, note))

	return j.count
}

// RemoveEntry deletes the entry at the given zero-based position.
func (j *Journal) RemoveEntry(position int) error {
	if position < 0 || position >= len(j.entries) {
		return ErrEntryPositionOutOfRange
	}

	j.entries = slices.Delete(j.entries, position, position+1)

	return nil
}

// Entries returns a copy of the numbered entries in insertion order.
func (j *Journal) Entries() []string {
	return slices.Clone(j.entries)
}

// String returns the numbered entries joined with newlines.
func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}
