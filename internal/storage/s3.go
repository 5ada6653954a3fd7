// Package storage reads documents from an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mfenderov/docqa/internal/processor"
	"github.com/mfenderov/docqa/pkg/models"
)

// DefaultMaxObjectBytes bounds how much of a single object is read.
const DefaultMaxObjectBytes = 10 << 20

// Config holds S3/MinIO client configuration.
type Config struct {
	Endpoint        string // "localhost:9000" for MinIO
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string // optional; skips bucket location lookup when set
	MaxObjectBytes  int64
}

// Client lists and reads bucket objects as documents.
type Client struct {
	minioClient    *minio.Client
	bucket         string
	maxObjectBytes int64
	processor      *processor.Processor
}

// New creates a new S3/MinIO client.
func New(config Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	if config.MaxObjectBytes <= 0 {
		config.MaxObjectBytes = DefaultMaxObjectBytes
	}

	minioClient, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Client{
		minioClient:    minioClient,
		bucket:         config.Bucket,
		maxObjectBytes: config.MaxObjectBytes,
		processor:      processor.New(),
	}, nil
}

// URI returns the s3:// locator of an object key.
func (c *Client) URI(key string) string {
	return "s3://" + c.bucket + "/" + key
}

// KeyFromURI returns the object key of an s3:// locator in this bucket.
func (c *Client) KeyFromURI(uri string) (string, bool) {
	return strings.CutPrefix(uri, "s3://"+c.bucket+"/")
}

// ListDocuments returns one document per object under prefix, without
// content. Objects above the size limit get status error.
func (c *Client) ListDocuments(ctx context.Context, prefix string) ([]models.Document, error) {
	exists, err := c.minioClient.BucketExists(ctx, c.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", c.bucket)
	}

	var docs []models.Document
	objectCh := c.minioClient.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		if strings.HasSuffix(object.Key, "/") {
			continue
		}

		contentType := object.ContentType
		if contentType == "" {
			contentType = mime.TypeByExtension(strings.ToLower(path.Ext(object.Key)))
		}

		status := models.StatusReady
		if object.Size > c.maxObjectBytes {
			slog.Warn("object too large", "key", object.Key, "size", object.Size, "max", c.maxObjectBytes)
			status = models.StatusError
		}

		uri := c.URI(object.Key)
		docs = append(docs, models.Document{
			ID:     models.GenerateDocumentID(uri),
			Name:   path.Base(object.Key),
			Type:   contentType,
			Size:   object.Size,
			Status: status,
			Source: uri,
		})
	}

	slog.Debug("listed objects", "bucket", c.bucket, "prefix", prefix, "count", len(docs))
	return docs, nil
}

// FetchContent reads an object and extracts its text.
func (c *Client) FetchContent(ctx context.Context, key string) (string, error) {
	object, err := c.minioClient.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(io.LimitReader(object, c.maxObjectBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	if int64(len(data)) > c.maxObjectBytes {
		return "", fmt.Errorf("object %s exceeds %d bytes", key, c.maxObjectBytes)
	}

	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(key)))
	return c.processor.Extract(key, contentType, data)
}

// LoadDocuments lists prefix and fetches every ready object. A failed fetch
// marks that document as error and the rest continue.
func (c *Client) LoadDocuments(ctx context.Context, prefix string) ([]models.Document, error) {
	docs, err := c.ListDocuments(ctx, prefix)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if !docs[i].Ready() {
			continue
		}
		key, _ := c.KeyFromURI(docs[i].Source)
		text, err := c.FetchContent(ctx, key)
		if err != nil {
			slog.Warn("failed to fetch object", "key", key, "error", err)
			docs[i].Status = models.StatusError
			continue
		}
		docs[i].Content = text
	}
	return docs, nil
}

// Bucket returns the bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}
