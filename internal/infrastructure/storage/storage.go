package storage

import "io"

// FileStore abstracts the attachment blob store so handlers and use cases
// never touch the filesystem directly.
type FileStore interface {
	// Save streams content into the store under the given name and returns
	// the number of bytes written.
	Save(name string, content io.Reader) (int64, error)

	// Open returns a reader for a stored file. The caller closes it.
	Open(name string) (io.ReadCloser, error)

	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(name string) error
}
