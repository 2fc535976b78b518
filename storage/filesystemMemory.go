package storage

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// FilesystemMemory implements the Filesystem interface for in-memory file storage using go-billy's memfs
type FilesystemMemory struct {
	fs billy.Filesystem
}

// NewFilesystemMemory creates a new in-memory filesystem instance
func NewFilesystemMemory() Filesystem {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

func (m *FilesystemMemory) Open(path string) (io.ReadCloser, error) {
	return m.fs.Open(path)
}

// Write streams data from reader to a file at the specified path
func (m *FilesystemMemory) Write(path string, reader io.Reader, size int64) error {
	return writeBilly(m.fs, path, reader)
}
