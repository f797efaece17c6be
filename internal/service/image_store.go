package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"urbancare-clinic-api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrImageTooLarge is returned for uploads over the size cap
	ErrImageTooLarge = errors.New("image size must be less than 5MB")

	// ErrImageTypeNotAllowed is returned for anything but JPEG, PNG or WebP
	ErrImageTypeNotAllowed = errors.New("image must be a JPEG, PNG or WebP")
)

// MaxImageSize caps uploaded blog images at 5 MiB
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// S3API is the subset of the S3 client used by ImageStore
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore uploads blog images to an S3-compatible bucket and hands back
// their public URL. Object names carry a timestamp and a UUID, so two
// uploads never collide on a key.
type ImageStore interface {
	Upload(ctx context.Context, body io.Reader, filename string, contentType string, size int64) (string, error)
}

type imageStore struct {
	s3Client S3API
	log      *logrus.Logger
	cfg      config.StorageConfig
}

func NewImageStore(s3Client S3API, log *logrus.Logger, cfg config.StorageConfig) ImageStore {
	return &imageStore{
		s3Client: s3Client,
		log:      log,
		cfg:      cfg,
	}
}

// Upload validates the image and writes it under images/<unix-ms>-<uuid>.<ext>
func (s *imageStore) Upload(ctx context.Context, body io.Reader, filename string, contentType string, size int64) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", ErrImageTypeNotAllowed
	}
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	key := fmt.Sprintf("images/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(filename))

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		s.log.Errorf("Failed to upload image %s: %+v", key, err)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.PublicURL, "/"), key)
	s.log.Infof("Image uploaded: key=%s, size=%d", key, size)
	return publicURL, nil
}
