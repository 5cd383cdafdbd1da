package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/beldyconnect/backend/config"
)

// BasketImageService stores preset-basket imagery in S3.
type BasketImageService struct {
	s3Config   *config.S3Config
	publicRead bool
	log        *logrus.Logger
}

// NewBasketImageService marks the bucket world-readable so image URLs can
// be served directly. When the policy cannot be applied (restricted IAM),
// the service falls back to presigned URLs.
func NewBasketImageService(ctx context.Context, s3Config *config.S3Config, log *logrus.Logger) *BasketImageService {
	s := &BasketImageService{
		s3Config: s3Config,
		log:      log,
	}
	if err := s3Config.SetupBucketPolicy(ctx); err != nil {
		log.WithError(err).Warn("bucket policy not applied, serving presigned image URLs")
	} else {
		s.publicRead = true
	}
	return s
}

// UploadBasketImage uploads image data for a preset basket and returns
// the public URL.
func (s *BasketImageService) UploadBasketImage(ctx context.Context, basketName string, imageData []byte) (string, error) {
	fileName := fmt.Sprintf("basket-images/%s.jpg", slugify(basketName))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.BasketImageURL(ctx, basketName)
	s.log.WithField("url", url).Info("uploaded basket image")

	return url, nil
}

// BasketImageURL returns the URL a basket image is served from. Public
// buckets get a stable URL; otherwise a presigned one valid for an hour.
func (s *BasketImageService) BasketImageURL(ctx context.Context, basketName string) string {
	key := fmt.Sprintf("basket-images/%s.jpg", slugify(basketName))
	if s.publicRead {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	}
	url, err := s.s3Config.GeneratePresignedURL(ctx, key, time.Hour)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to presign image url")
		return ""
	}
	return url
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	return strings.Trim(slug, "-")
}
