package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	cdnDomain string
}

func NewS3Uploader(region, bucket, cdnDomain string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Uploader{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		cdnDomain: cdnDomain,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, image string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(stripDataURIPrefix(image))
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 payload: %v", ErrUploadFailed, err)
	}

	contentType := http.DetectContentType(data)
	key := generateObjectKey(contentType)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		ACL:           types.ObjectCannedACLPublicRead,
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrUploadTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return u.objectURL(key), nil
}

func (u *S3Uploader) objectURL(key string) string {
	if u.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func generateObjectKey(contentType string) string {
	ext := ".bin"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}

	return fmt.Sprintf("uploads/%d_%04d%s", time.Now().Unix(), rand.Intn(10000), ext)
}
