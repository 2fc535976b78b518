package storage

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
)

func startMinio(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping S3 integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("error terminating minio container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

func TestFilesystemS3(t *testing.T) {
	endpoint := startMinio(t)

	filesystem, err := NewFilesystemS3(S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		BucketName:      "datasets",
		AccessKeyID:     minioUser,
		SecretAccessKey: minioPassword,
	})
	require.NoError(t, err)

	_, err = filesystem.client.CreateBucket(context.Background(), &s3.CreateBucketInput{
		Bucket: aws.String("datasets"),
	})
	require.NoError(t, err)

	t.Run("Write then open returns the content", func(t *testing.T) {
		content := "id,name\n1,Alice\n"
		err := filesystem.Write("table.csv", strings.NewReader(content), int64(len(content)))
		require.NoError(t, err)

		assert.Equal(t, content, readAll(t, filesystem, "table.csv"))
	})

	t.Run("Leading slash addresses the same object", func(t *testing.T) {
		assert.Equal(t, "id,name\n1,Alice\n", readAll(t, filesystem, "/table.csv"))
	})

	t.Run("Open of a missing key is not exist", func(t *testing.T) {
		_, err := filesystem.Open("missing.csv")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestFilesystemS3Key(t *testing.T) {
	filesystem := &FilesystemS3{bucketName: "datasets"}

	assert.Equal(t, "table.csv", filesystem.key("table.csv"))
	assert.Equal(t, "table.csv", filesystem.key("/table.csv"))
	assert.Equal(t, "data/table2.csv", filesystem.key("./data//table2.csv"))
	assert.Equal(t, "table.csv", filesystem.key("../table.csv"))
}
