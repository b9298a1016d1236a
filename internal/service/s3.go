package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"campusdocs/files_backend/internal/config"
	"campusdocs/files_backend/internal/pkg/apperrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service implements ObjectStorage over an S3 bucket. A custom endpoint
// (MinIO and friends) switches the client to path-style addressing.
type S3Service struct {
	config   *config.Config
	uploader *manager.Uploader
	s3Client *s3.Client
}

func NewS3Service(cfg *config.Config) (*S3Service, error) {
	credsProvider := credentials.NewStaticCredentialsProvider(
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credsProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if cfg.S3Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	}

	s3Client := s3.NewFromConfig(awsCfg, s3Opts...)

	service := &S3Service{
		config:   cfg,
		uploader: manager.NewUploader(s3Client),
		s3Client: s3Client,
	}

	log.Printf("S3 service initialized, bucket: %s", cfg.S3BucketName)
	return service, nil
}

func (s *S3Service) Upload(ctx context.Context, body io.Reader, key, filename string) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentTypeFor(filename)),
	})
	if err != nil {
		return "", &apperrors.StorageError{Err: err}
	}

	return objectLocation(s.config.S3Endpoint, s.config.S3BucketName, s.config.S3Region, key), nil
}

func (s *S3Service) Delete(ctx context.Context, fileURL string) error {
	key, err := objectKeyFromURL(fileURL)
	if err != nil {
		return &apperrors.StorageError{Err: err}
	}

	_, err = s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.S3BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return &apperrors.StorageError{Err: err}
	}
	return nil
}

// contentTypeFor derives the content type from the original filename's
// extension, falling back to a generic binary type.
func contentTypeFor(filename string) string {
	ext := filepath.Ext(filename)
	if ext != "" {
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
	}
	return "application/octet-stream"
}

// objectLocation builds the object's URL against either the custom endpoint
// (path-style) or the standard bucket URL pattern.
func objectLocation(endpoint, bucket, region, key string) string {
	if endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(endpoint, "/"), bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// objectKeyFromURL extracts the object key as the final path segment.
func objectKeyFromURL(fileURL string) (string, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid object URL %q: %w", fileURL, err)
	}
	key := path.Base(parsed.Path)
	if key == "." || key == "/" || key == "" {
		return "", fmt.Errorf("object URL %q has no key", fileURL)
	}
	return key, nil
}
