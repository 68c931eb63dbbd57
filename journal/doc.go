// Package journal provides a small journal of numbered text entries and a
// separate file-based persistence helper.
//
// The Journal only manages entries; persisting its string form is the job of
// FileStore, which performs a plain whole-file overwrite and read with no
// format guarantees, versioning, or concurrency control. Failures propagate
// to the caller joined with the package error variables; there is no recovery
// logic.
package journal
