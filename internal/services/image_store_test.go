package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{}, nil
}

func TestImageStoreUpload(t *testing.T) {
	up := &fakeUploader{}
	store := &S3ImageStore{uploader: up, bucket: "fyyur-images", publicBaseURL: "https://cdn.example"}

	url, err := store.Upload(context.Background(), "venues", "Hop.PNG", "image/png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	key := aws.ToString(up.input.Key)
	if !strings.HasPrefix(key, "venues/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected key %q", key)
	}
	if aws.ToString(up.input.Bucket) != "fyyur-images" || aws.ToString(up.input.ContentType) != "image/png" {
		t.Fatalf("unexpected input %+v", up.input)
	}
	if url != "https://cdn.example/"+key {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestImageStoreUploadError(t *testing.T) {
	boom := errors.New("access denied")
	store := &S3ImageStore{uploader: &fakeUploader{err: boom}, bucket: "b", publicBaseURL: "https://cdn.example"}

	if _, err := store.Upload(context.Background(), "artists", "a.jpg", "", strings.NewReader("x")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upload error, got %v", err)
	}
}

func TestNilImageStoreIsDisabled(t *testing.T) {
	var store *S3ImageStore
	if _, err := store.Upload(context.Background(), "venues", "a.jpg", "", strings.NewReader("x")); !errors.Is(err, ErrUploadsDisabled) {
		t.Fatalf("expected ErrUploadsDisabled, got %v", err)
	}
	if NewS3ImageStore(nil) != nil {
		t.Fatalf("expected nil store without config")
	}
}
