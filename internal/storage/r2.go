package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	appconfig "dietplanner/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBucket = errors.New("bucket name is required")

// R2Client reads and writes catalog documents in an S3 compatible bucket.
type R2Client struct {
	client *s3.Client
	bucket string
}

func NewR2Client(ctx context.Context, r2 appconfig.R2Config) (*R2Client, error) {
	if r2.Bucket == "" {
		return nil, ErrMissingBucket
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				r2.AccessKey,
				r2.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if r2.Endpoint != "" {
			o.BaseEndpoint = aws.String(r2.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &R2Client{
		client: client,
		bucket: r2.Bucket,
	}, nil
}

// Fetch downloads a whole object.
func (r *R2Client) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", r.bucket, key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Upload stores body under key, replacing any existing object.
func (r *R2Client) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("uploading %s/%s: %w", r.bucket, key, err)
	}
	return nil
}
