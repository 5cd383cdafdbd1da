package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultImageBucket = "beldyconnect-basket-images"

// publicReadPolicy grants anonymous GetObject on every key in the bucket,
// so basket images can be served straight from S3 without presigning.
const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Sid": "PublicReadGetObject",
			"Effect": "Allow",
			"Principal": "*",
			"Action": "s3:GetObject",
			"Resource": "arn:aws:s3:::%s/*"
		}
	]
}`

// S3Config bundles the S3 client with the basket image bucket.
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config builds the S3 client from the ambient AWS environment
// (credentials chain, AWS_REGION). S3_BUCKET_NAME overrides the bucket.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	cfg := &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: os.Getenv("S3_BUCKET_NAME"),
	}
	if cfg.BucketName == "" {
		cfg.BucketName = defaultImageBucket
	}
	return cfg, nil
}

// SetupBucketPolicy marks the image bucket world-readable.
func (s *S3Config) SetupBucketPolicy(ctx context.Context) error {
	_, err := s.Client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.BucketName),
		Policy: aws.String(fmt.Sprintf(publicReadPolicy, s.BucketName)),
	})
	if err != nil {
		return fmt.Errorf("applying bucket policy: %w", err)
	}
	return nil
}

// GeneratePresignedURL returns a time-limited GET URL for an object,
// used when the bucket policy has not been applied.
func (s *S3Config) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	req, err := s3.NewPresignClient(s.Client).PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", objectKey, err)
	}
	return req.URL, nil
}
