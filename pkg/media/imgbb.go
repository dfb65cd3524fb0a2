package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultImgBBEndpoint = "https://api.imgbb.com/1/upload"

type ImgBBUploader struct {
	client   *http.Client
	apiKey   string
	endpoint string
}

func NewImgBBUploader(apiKey, endpoint string) *ImgBBUploader {
	if endpoint == "" {
		endpoint = defaultImgBBEndpoint
	}

	return &ImgBBUploader{
		// Timeouts are driven by the request context, not the client.
		client:   &http.Client{},
		apiKey:   apiKey,
		endpoint: endpoint,
	}
}

type imgBBResponse struct {
	Data struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func (u *ImgBBUploader) Upload(ctx context.Context, image string) (string, error) {
	form := url.Values{}
	form.Set("key", u.apiKey)
	form.Set("image", stripDataURIPrefix(image))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrUploadTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUploadFailed, resp.StatusCode)
	}

	var body imgBBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrUploadFailed, err)
	}

	if !body.Success || body.Data.DisplayURL == "" && body.Data.URL == "" {
		return "", fmt.Errorf("%w: host rejected the image", ErrUploadFailed)
	}

	if body.Data.DisplayURL != "" {
		return body.Data.DisplayURL, nil
	}
	return body.Data.URL, nil
}

// stripDataURIPrefix drops a leading "data:image/...;base64," marker so
// clients can send either form.
func stripDataURIPrefix(image string) string {
	if strings.HasPrefix(image, "data:") {
		if idx := strings.Index(image, ","); idx >= 0 {
			return image[idx+1:]
		}
	}
	return image
}
