package media

import (
	"context"
	"errors"
)

// Uploader converts an inline image payload (base64, optionally with a data
// URI prefix) into a durable hosted URL.
type Uploader interface {
	Upload(ctx context.Context, image string) (string, error)
}

var (
	ErrUploadTimeout = errors.New("media upload timed out")
	ErrUploadFailed  = errors.New("media upload failed")
)
