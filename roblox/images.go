package roblox

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Image is a fetched thumbnail image.
type Image struct {
	ContentType string
	Data        []byte
}

// Image downloads the thumbnail at imageURL. The upstream Content-Type is kept
// as reported; it is only sniffed when the upstream omits it. Images larger
// than MaxImageBytes are rejected.
func (c *Client) Image(ctx context.Context, imageURL string) (*Image, error) {
	resp, err := c.get(ctx, imageURL, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxImageBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading image from %s", imageURL)
	}

	if int64(len(data)) > c.maxImageBytes {
		return nil, errors.Errorf("image from %s exceeds %d bytes", imageURL, c.maxImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &Image{ContentType: contentType, Data: data}, nil
}
