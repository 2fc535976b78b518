package storage

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FilesystemLocal implements the Filesystem interface for local file storage
type FilesystemLocal struct {
	fs       billy.Filesystem
	basePath string
}

// NewFilesystemLocal creates a new local filesystem instance rooted at the specified base path
func NewFilesystemLocal(basePath string) Filesystem {
	return &FilesystemLocal{
		fs:       osfs.New(basePath),
		basePath: basePath,
	}
}

// Open opens a file at the specified path relative to the base path
func (l *FilesystemLocal) Open(path string) (io.ReadCloser, error) {
	return l.fs.Open(path)
}

// Write streams data from reader to a file at the specified path relative to the base path
func (l *FilesystemLocal) Write(path string, reader io.Reader, size int64) error {
	return writeBilly(l.fs, path, reader)
}

func writeBilly(fs billy.Filesystem, path string, reader io.Reader) error {
	file, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}
