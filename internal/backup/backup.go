// Package backup snapshots the store and ships the copy to S3 before the
// schema is changed.
package backup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
)

// putObjectAPI is the part of the S3 client the snapshotter needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a client from the backup settings. A custom endpoint
// switches to path-style addressing for S3-compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{Region: cfg.BackupRegion}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BackupEndpoint != "" {
			ep := cfg.BackupEndpoint
			o.BaseEndpoint = &ep
			o.UsePathStyle = true
		}
	})
}

type Snapshotter struct {
	db     *sql.DB
	client putObjectAPI
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

func NewSnapshotter(db *sql.DB, client putObjectAPI, bucket, prefix string, logger *slog.Logger) *Snapshotter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshotter{
		db:     db,
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot writes a consistent copy of the store with VACUUM INTO and uploads
// it. It returns the object key.
func (s *Snapshotter) Snapshot(ctx context.Context, label string) (string, error) {
	dir, err := os.MkdirTemp("", "scheduler-backup-")
	if err != nil {
		return "", fmt.Errorf("backup temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "snapshot.db")
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("vacuum into: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat snapshot: %w", err)
	}

	key := s.key(label)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String("application/vnd.sqlite3"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	s.logger.Info("store snapshot uploaded", "bucket", s.bucket, "key", key, "bytes", info.Size())
	return key, nil
}

func (s *Snapshotter) key(label string) string {
	ts := s.now().UTC().Format("20060102T150405Z")
	name := ts + "-" + uuid.NewString()
	if label != "" {
		name = ts + "-" + label + "-" + uuid.NewString()
	}
	return s.prefix + name + ".db"
}

// BeforeMigrate is a migration hook that snapshots the store labelled with
// the first version about to be applied.
func (s *Snapshotter) BeforeMigrate(ctx context.Context, pending []migration.Unit) error {
	label := ""
	if len(pending) > 0 {
		label = "pre-" + pending[0].Version
	}
	_, err := s.Snapshot(ctx, label)
	return err
}
