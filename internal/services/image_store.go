package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"fyyur/internal/config"
	"fyyur/internal/interfaces"
)

// ErrUploadsDisabled is returned when an image arrives but no bucket is configured.
var ErrUploadsDisabled = errors.New("image uploads are not configured")

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3ImageStore uploads venue and artist images to an S3 bucket.
type S3ImageStore struct {
	uploader      objectUploader
	bucket        string
	publicBaseURL string
}

var _ interfaces.ImageStore = (*S3ImageStore)(nil)

// NewS3ImageStore returns nil when cfg is nil.
func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	if cfg == nil || cfg.Client == nil {
		return nil
	}
	return &S3ImageStore{
		uploader:      manager.NewUploader(cfg.Client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload stores body under folder with a random object name that keeps the
// original extension, and returns the public URL of the object.
func (s *S3ImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if s == nil {
		return "", ErrUploadsDisabled
	}
	key := path.Join(folder, uuid.NewString()+strings.ToLower(path.Ext(filename)))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return s.publicBaseURL + "/" + key, nil
}
