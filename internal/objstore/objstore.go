// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagemark Authors

// Package objstore stores page image bytes in an S3-compatible bucket
// (AWS S3 or MinIO). Image metadata lives in the relational database; this
// package only ever sees keys and raw bytes.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
)

// ErrNotConfigured is returned by [NewS3Store] when the bucket name is empty.
var ErrNotConfigured = errors.New("object store is not configured")

// presigned GET links are short-lived; page content embeds keys, not URLs
const presignExpiry = 15 * time.Minute

// ObjectStore is the object storage surface the image service depends on.
// Delete returns the keys confirmed removed so callers can keep records for
// the survivors.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, keys []string) ([]string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// S3Store implements [ObjectStore] on top of the AWS SDK v2 S3 client.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	logger  *logger.Logger
}

// NewS3Store builds an S3 client from static credentials. A non-empty
// Endpoint switches the client to an S3-compatible server such as MinIO.
func NewS3Store(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3Store").Msg("error loading S3 config")
		return nil, fmt.Errorf("error loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		logger:  log,
	}, nil
}

// NewStorageKey generates an object key for a fresh upload, partitioned by
// owner and date so bucket listings stay navigable.
func NewStorageKey(ownerID int64) string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%d/%v", ownerID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// Put uploads an object under the given key.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*S3Store.Put").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("error uploading object: %w", err)
	}

	return nil
}

// Delete removes the given keys in a single batch call and returns the keys
// the server confirmed deleted. S3 treats missing keys as deleted, so the
// confirmed set can include keys the database never saw.
func (s *S3Store) Delete(ctx context.Context, keys []string) ([]string, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil, nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for i := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: &keys[i]})
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &s.bucket,
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		log.Err(err).Str("func", "*S3Store.Delete").Int("keys", len(keys)).Msg("error deleting objects")
		return nil, fmt.Errorf("error deleting objects: %w", err)
	}

	failed := make(map[string]struct{}, len(out.Errors))
	for _, e := range out.Errors {
		failed[aws.ToString(e.Key)] = struct{}{}
		log.Warn().
			Str("func", "*S3Store.Delete").
			Str("key", aws.ToString(e.Key)).
			Str("code", aws.ToString(e.Code)).
			Msg("object deletion failed")
	}

	deleted := make([]string, 0, len(keys)-len(failed))
	for _, key := range keys {
		if _, ok := failed[key]; !ok {
			deleted = append(deleted, key)
		}
	}

	return deleted, nil
}

// PresignGet returns a short-lived read URL for the given key.
func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Err(err).Str("func", "*S3Store.PresignGet").Str("key", key).Msg("error presigning object")
		return "", fmt.Errorf("error presigning object: %w", err)
	}

	return req.URL, nil
}
