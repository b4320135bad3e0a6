package roblox

import (
	"context"
	"net/url"
)

// User is the public profile returned by the users API.
type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	Description      string `json:"description"`
	Created          string `json:"created"`
	IsBanned         bool   `json:"isBanned"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// User fetches the profile for userID.
func (c *Client) User(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, c.usersURL+"/v1/users/"+url.PathEscape(userID), &user); err != nil {
		return nil, err
	}

	return &user, nil
}
