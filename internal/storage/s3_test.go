package storage

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/mfenderov/docqa/pkg/models"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty endpoint",
			config:  Config{Endpoint: "", Bucket: "test"},
			wantErr: true,
		},
		{
			name:    "empty bucket",
			config:  Config{Endpoint: "localhost:9000", Bucket: ""},
			wantErr: true,
		},
		{
			name: "valid config",
			config: Config{
				Endpoint:        "localhost:9000",
				Bucket:          "test",
				AccessKeyID:     "minioadmin",
				SecretAccessKey: "minioadmin",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_URI(t *testing.T) {
	c, err := New(Config{Endpoint: "localhost:9000", Bucket: "docs"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	uri := c.URI("reports/q3/SE_Unit3.pdf")
	if uri != "s3://docs/reports/q3/SE_Unit3.pdf" {
		t.Errorf("URI() = %q", uri)
	}

	key, ok := c.KeyFromURI(uri)
	if !ok || key != "reports/q3/SE_Unit3.pdf" {
		t.Errorf("KeyFromURI() = %q, %v", key, ok)
	}
	if _, ok := c.KeyFromURI("s3://other/reports/x.pdf"); ok {
		t.Error("KeyFromURI() should reject other buckets")
	}
}

// TestIntegration_LoadDocuments runs against MinIO.
// Skip if MinIO is not running.
func TestIntegration_LoadDocuments(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}

	client, err := New(Config{
		Endpoint:        endpoint,
		Bucket:          "docqa-test",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		MaxObjectBytes:  1024,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.minioClient.BucketExists(ctx, client.bucket)
	if err != nil {
		t.Skipf("MinIO not available, skipping integration test: %v", err)
	}
	if !exists {
		if err := client.minioClient.MakeBucket(ctx, client.bucket, minio.MakeBucketOptions{}); err != nil {
			t.Fatalf("MakeBucket() error = %v", err)
		}
	}

	prefix := "integration/" + t.Name() + "/"
	objects := map[string]string{
		prefix + "policy.md":  "# Leave Policy\n\nTwenty days per year.",
		prefix + "page.html":  "<html><body><h1>Handbook</h1></body></html>",
		prefix + "huge.txt":   strings.Repeat("x", 2048),
		"outside/ignored.txt": "not under prefix",
	}
	for key, body := range objects {
		_, err := client.minioClient.PutObject(ctx, client.bucket, key, strings.NewReader(body), int64(len(body)), minio.PutObjectOptions{})
		if err != nil {
			t.Fatalf("PutObject(%s) error = %v", key, err)
		}
	}

	docs, err := client.LoadDocuments(ctx, prefix)
	if err != nil {
		t.Fatalf("LoadDocuments() error = %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("LoadDocuments() returned %d documents, want 3: %v", len(docs), models.Names(docs))
	}

	byName := make(map[string]models.Document)
	for _, d := range docs {
		byName[d.Name] = d
	}

	if d := byName["policy.md"]; d.Status != models.StatusReady || !strings.Contains(d.Content, "Twenty days") {
		t.Errorf("policy.md = %+v", d)
	}
	if d := byName["page.html"]; !strings.Contains(d.Content, "# Handbook") {
		t.Errorf("page.html content = %q, want converted markdown", d.Content)
	}
	if d := byName["huge.txt"]; d.Status != models.StatusError || d.Content != "" {
		t.Errorf("huge.txt should be error without content, got %+v", d)
	}
	if d := byName["policy.md"]; d.ID != models.GenerateDocumentID("s3://docqa-test/"+prefix+"policy.md") {
		t.Errorf("policy.md ID = %q, want hash of s3 URI", d.ID)
	}
}
