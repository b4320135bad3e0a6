package roblox

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ThumbnailRequest selects which user thumbnail to render.
type ThumbnailRequest struct {
	// Type is the thumbnail sub-endpoint, e.g. avatar, avatar-headshot or
	// avatar-bust.
	Type       string
	UserID     string
	Size       int
	Format     string
	IsCircular bool
}

// Thumbnail is one entry of a thumbnail batch response.
type Thumbnail struct {
	TargetID int64  `json:"targetId"`
	State    string `json:"state"`
	ImageURL string `json:"imageUrl"`
	Version  string `json:"version"`
}

type thumbnailResponse struct {
	Data []Thumbnail `json:"data"`
}

func (c *Client) thumbnailURL(r ThumbnailRequest) string {
	q := url.Values{}
	q.Set("userIds", r.UserID)
	q.Set("size", fmt.Sprintf("%dx%d", r.Size, r.Size))
	q.Set("format", r.Format)
	q.Set("isCircular", strconv.FormatBool(r.IsCircular))

	return c.thumbnailsURL + "/v1/users/" + url.PathEscape(r.Type) + "?" + q.Encode()
}

// UserThumbnails returns the thumbnail entries for the request. The list may
// be empty when the user has no rendered thumbnail.
func (c *Client) UserThumbnails(ctx context.Context, r ThumbnailRequest) ([]Thumbnail, error) {
	var body thumbnailResponse
	if err := c.getJSON(ctx, c.thumbnailURL(r), &body); err != nil {
		return nil, err
	}

	return body.Data, nil
}
