package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sahilchouksey/pixel-portfolio/config"
)

// ErrNotConfigured is returned when no bucket credentials are set
var ErrNotConfigured = errors.New("object storage is not configured")

// ObjectStore is the upload surface the admin handlers need
type ObjectStore interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// SpacesClient handles DigitalOcean Spaces (S3 API) operations
type SpacesClient struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnURL   string
}

// SpacesConfig holds configuration for Spaces client
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string // host, e.g. nyc3.digitaloceanspaces.com
	CDNURL    string
}

// ConfigFromEnv builds a SpacesConfig from the DO_SPACES_* variables
func ConfigFromEnv(env *config.EnvironmentVariable) (SpacesConfig, error) {
	cfg := SpacesConfig{
		AccessKey: env.DO_SPACES_ACCESS_KEY,
		SecretKey: env.DO_SPACES_SECRET_KEY,
		Bucket:    env.DO_SPACES_BUCKET,
		Region:    env.DO_SPACES_REGION,
		Endpoint:  strings.TrimPrefix(env.DO_SPACES_ENDPOINT, "https://"),
		CDNURL:    strings.TrimRight(env.DO_SPACES_CDN_ENDPOINT, "/"),
	}

	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" || cfg.Region == "" {
		return cfg, ErrNotConfigured
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = cfg.Region + ".digitaloceanspaces.com"
	}
	return cfg, nil
}

// NewSpacesClient creates a new Spaces client
func NewSpacesClient(cfg SpacesConfig) (*SpacesClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		Endpoint:         aws.String("https://" + cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &SpacesClient{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		cdnURL:   cfg.CDNURL,
	}, nil
}

// UploadBytes uploads a public object and returns its URL
func (s *SpacesClient) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.FileURL(key), nil
}

// FileURL returns the public URL for a key, preferring the CDN
func (s *SpacesClient) FileURL(key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", s.cdnURL, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// GenerateKey builds a unique, URL safe object key under prefix
func GenerateKey(prefix, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Trim(unsafeKeyChars.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "file"
	}

	return fmt.Sprintf("%s/%d_%s%s", prefix, now.Unix(), base, ext)
}
