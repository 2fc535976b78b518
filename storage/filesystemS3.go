package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FilesystemS3 reads dataset files from a bucket of an S3 compatible service.
// Dataset paths are used as object keys.
type FilesystemS3 struct {
	client     *s3.Client
	bucketName string
}

type S3Config struct {
	Endpoint        string // empty for AWS, set for MinIO and similar services
	Region          string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
}

// NewFilesystemS3 creates an S3 client with static credentials.
func NewFilesystemS3(cfg S3Config) (*FilesystemS3, error) {
	awsConfig, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &FilesystemS3{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

func (s *FilesystemS3) key(datasetPath string) string {
	return strings.TrimPrefix(path.Clean("/"+datasetPath), "/")
}

// Open returns the object body of a dataset. Missing keys wrap fs.ErrNotExist.
func (s *FilesystemS3) Open(datasetPath string) (io.ReadCloser, error) {
	key := s.key(datasetPath)
	result, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucketName, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("s3://%s/%s: %w", s.bucketName, key, err)
	}
	return result.Body, nil
}

// Write uploads a dataset, used to seed a bucket.
func (s *FilesystemS3) Write(datasetPath string, reader io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.key(datasetPath)),
		Body:   reader,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	_, err := s.client.PutObject(context.Background(), input)
	return err
}
