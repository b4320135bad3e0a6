package roblox

import (
	"context"
	"net/url"
)

// PlaceDetails is a single entry of the multiget-place-details response.
type PlaceDetails struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Visits         int64  `json:"visits"`
	FavoritesCount int64  `json:"favoritesCount"`
}

// PlaceDetails looks up a single place through the batched multiget endpoint.
// The upstream list is returned as is and may be empty.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) ([]PlaceDetails, error) {
	q := url.Values{}
	q.Set("placeIds", placeID)

	var places []PlaceDetails
	if err := c.getJSON(ctx, c.gamesURL+"/v1/games/multiget-place-details?"+q.Encode(), &places); err != nil {
		return nil, err
	}

	return places, nil
}
