package storage

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/siherrmann/tableViewer/helper"
)

// Filesystem is a read/write source of dataset files.
// Open returns an error wrapping fs.ErrNotExist for missing files on every backend.
type Filesystem interface {
	Open(path string) (io.ReadCloser, error)
	Write(path string, reader io.Reader, size int64) error
}

// CreateFilesystemFromConfig creates a filesystem based on the configured storage mode
func CreateFilesystemFromConfig(config *helper.Config) (Filesystem, error) {
	switch config.StorageMode {
	case helper.STORAGE_MODE_S3:
		s3Config := S3Config{
			Endpoint:        config.S3Endpoint,
			Region:          config.S3Region,
			BucketName:      config.S3BucketName,
			AccessKeyID:     config.S3AccessKeyID,
			SecretAccessKey: config.S3SecretAccessKey,
		}
		if s3Config.BucketName == "" || s3Config.AccessKeyID == "" || s3Config.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: s3-bucket-name, s3-access-key-id, s3-secret-access-key")
		}
		s3Filesystem, err := NewFilesystemS3(s3Config)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 filesystem: %w", err)
		}
		return s3Filesystem, nil
	case helper.STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case helper.STORAGE_MODE_LOCAL:
		return NewFilesystemLocal(config.StoragePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", config.StorageMode)
	}
}

// SeedFilesystem copies every regular file of source into filesystem under the same path.
func SeedFilesystem(filesystem Filesystem, source fs.FS) error {
	return fs.WalkDir(source, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		file, err := source.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		err = filesystem.Write(path, file, info.Size())
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", path, err)
		}
		return nil
	})
}
