package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader ships a generated workbook to an S3 bucket. Upload is strictly
// post-generation; workbook assembly itself performs no network I/O.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

// NewS3Uploader creates a new uploader.
func NewS3Uploader(cfg aws.Config, bucket, prefix string) *S3Uploader {
	return &S3Uploader{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Prefix: prefix,
	}
}

// UploadWorkbook uploads the workbook at localPath under the configured prefix,
// keyed by its base file name.
func (u *S3Uploader) UploadWorkbook(localPath string) error {
	key := filepath.Join(u.Prefix, filepath.Base(localPath))
	// filepath.Join uses backslash on Windows; S3 keys use forward slashes.
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "/")
	return u.UploadFile(localPath, key)
}

// UploadFile uploads a single file to S3.
func (u *S3Uploader) UploadFile(localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	slog.Info("Uploading to S3", "local", localPath, "bucket", u.Bucket, "key", key)

	_, err = u.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3: %w", err)
	}
	return nil
}
