package journal

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrSavingJournalFailed is returned when writing the journal file fails.
	ErrSavingJournalFailed = errors.New("saving journal failed")

	// ErrLoadingJournalFailed is returned when reading the journal file fails.
	ErrLoadingJournalFailed = errors.New("loading journal failed")
)

const journalFileMode = 0o644

// FileStore persists the string form of anything with a String method, not
// just journals, so other types can reuse the same persistence path.
//
// Save overwrites the whole file; Load reads it back verbatim. That is the
// entire contract.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() FileStore {
	return FileStore{}
}

// Save writes the string form of the given value to the file at path,
// replacing any previous content.
func (fs FileStore) Save(value fmt.Stringer, path string) error {
	if err := os.WriteFile(path, []byte(value.String()), journalFileMode); err != nil {
		return errors.Join(ErrSavingJournalFailed, err)
	}

	return nil
}

// Load reads the file at path and returns its content as a string.
func (fs FileStore) Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Join(ErrLoadingJournalFailed, err)
	}

	return string(content), nil
}
