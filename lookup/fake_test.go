package lookup

import (
	"context"
	"sync/atomic"

	"github.com/prognoshealth/rbxlookup/roblox"
)

type fakeUpstream struct {
	places    []roblox.PlaceDetails
	placesErr error

	user    *roblox.User
	userErr error

	thumbs    []roblox.Thumbnail
	thumbsErr error

	image    *roblox.Image
	imageErr error

	thumbRequest roblox.ThumbnailRequest
	imageURL     string
	calls        atomic.Int32
}

func (f *fakeUpstream) PlaceDetails(ctx context.Context, placeID string) ([]roblox.PlaceDetails, error) {
	f.calls.Add(1)
	return f.places, f.placesErr
}

func (f *fakeUpstream) User(ctx context.Context, userID string) (*roblox.User, error) {
	f.calls.Add(1)
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeUpstream) UserThumbnails(ctx context.Context, r roblox.ThumbnailRequest) ([]roblox.Thumbnail, error) {
	f.calls.Add(1)
	f.thumbRequest = r
	if f.thumbsErr != nil {
		return nil, f.thumbsErr
	}
	return f.thumbs, nil
}

func (f *fakeUpstream) Image(ctx context.Context, imageURL string) (*roblox.Image, error) {
	f.calls.Add(1)
	f.imageURL = imageURL
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.image, nil
}

var (
	testPlace = roblox.PlaceDetails{ID: 123, Name: "X", Description: "d", Visits: 10, FavoritesCount: 5}

	testUser = &roblox.User{
		ID:               42,
		Name:             "bob",
		IsBanned:         false,
		Created:          "2020-01-01",
		HasVerifiedBadge: true,
		DisplayName:      "Bob",
		Description:      "hi",
	}

	testThumbURL = "https://tr.rbxcdn.com/30DAY-Avatar/420/420/Avatar/Png/noFilter"

	testThumb = roblox.Thumbnail{TargetID: 42, State: "Completed", ImageURL: testThumbURL}

	notFound = &roblox.StatusError{StatusCode: 404, Status: "404 Not Found", URL: "https://upstream.test"}
)
