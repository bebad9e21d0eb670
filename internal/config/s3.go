package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 configuration for image uploads.
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	Region        string
	PublicBaseURL string
}

// NewS3Config returns nil when no bucket is configured, which disables uploads.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, nil
	}
	region := getEnv("AWS_REGION", "us-east-1")

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			key,
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        bucket,
		Region:        region,
		PublicBaseURL: publicBaseURL(os.Getenv("S3_PUBLIC_BASE_URL"), bucket, region),
	}, nil
}

func publicBaseURL(configured, bucket, region string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}
