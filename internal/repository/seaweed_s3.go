package repository

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/mansoorceksport/titan/internal/config"
)

// SeaweedS3Repository implements domain.FileRepository against any
// S3-compatible store (SeaweedFS, MinIO, AWS)
type SeaweedS3Repository struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewSeaweedS3Repository creates a new S3 repository and makes sure the bucket exists
func NewSeaweedS3Repository(ctx context.Context, cfg appConfig.S3Config) (*SeaweedS3Repository, error) {
	// SeaweedFS and MinIO still require signed requests, any static key works
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("any", "any", "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	repo := &SeaweedS3Repository{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.Endpoint,
	}

	if err := repo.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// Upload saves a file to S3 and returns the URL
func (r *SeaweedS3Repository) Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	// Format: {Endpoint}/{Bucket}/{Key}
	return fmt.Sprintf("%s/%s/%s", r.publicURL, r.bucket, filename), nil
}

func (r *SeaweedS3Repository) ensureBucket(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err == nil {
		return nil
	}

	_, err = r.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", r.bucket, err)
	}
	return nil
}
