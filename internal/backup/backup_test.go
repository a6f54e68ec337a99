package backup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
)

type fakeS3 struct {
	bucket, key string
	body        []byte
	err         error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &s3.PutObjectOutput{}, nil
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSnapshot_UploadsConsistentCopy(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "programari.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = sqlDB.Exec(`CREATE TABLE "Job" ("id" INTEGER PRIMARY KEY, "nume" TEXT)`)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`INSERT INTO "Job" ("nume") VALUES ('Electrician')`)
	require.NoError(t, err)

	fake := &fakeS3{}
	s := NewSnapshotter(sqlDB, fake, "backups", "programari/", quiet())
	s.now = func() time.Time { return time.Date(2030, 1, 15, 8, 30, 0, 0, time.UTC) }

	key, err := s.Snapshot(ctx, "manual")
	require.NoError(t, err)

	assert.Equal(t, "backups", fake.bucket)
	assert.Equal(t, key, fake.key)
	assert.True(t, strings.HasPrefix(key, "programari/20300115T083000Z-manual-"), key)
	assert.True(t, strings.HasSuffix(key, ".db"))
	assert.True(t, bytes.HasPrefix(fake.body, []byte("SQLite format 3\x00")))

	restored := filepath.Join(t.TempDir(), "restored.db")
	require.NoError(t, os.WriteFile(restored, fake.body, 0o600))
	copyDB, err := db.Open(restored)
	require.NoError(t, err)
	defer copyDB.Close()

	var name string
	require.NoError(t, copyDB.QueryRow(`SELECT "nume" FROM "Job"`).Scan(&name))
	assert.Equal(t, "Electrician", name)
}

func TestBeforeMigrate_LabelsWithFirstPendingVersion(t *testing.T) {
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "programari.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	fake := &fakeS3{}
	s := NewSnapshotter(sqlDB, fake, "backups", "", quiet())

	pending := migration.History()[1:]
	require.NoError(t, s.BeforeMigrate(context.Background(), pending))
	assert.Contains(t, fake.key, "-pre-1_20251103141033_None-")
}

func TestSnapshot_UploadFailure(t *testing.T) {
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "programari.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	s := NewSnapshotter(sqlDB, &fakeS3{err: errors.New("access denied")}, "backups", "", quiet())
	_, err = s.Snapshot(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client := NewS3Client(&config.Config{
		BackupRegion:   "eu-central-1",
		BackupEndpoint: "http://localhost:9000",
		AWSAccessKey:   "key",
		AWSSecretKey:   "secret",
	})

	opts := client.Options()
	assert.Equal(t, "eu-central-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.NotNil(t, opts.Credentials)
}
