package lookup

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/prognoshealth/rbxlookup/roblox"
)

func (h *Handler) user(ctx context.Context, p Params) (Response, error) {
	if p.ResponseType != ResponseJSON && p.ResponseType != ResponseImage {
		return Response{}, validationError(msgUserResponseType)
	}

	var (
		thumbs     []roblox.Thumbnail
		profile    *roblox.User
		profileErr error
	)

	// A non-2xx status from either call is an answer, not a failure. Transport
	// errors abort the group, as do thumbnail decoding errors. A profile that
	// cannot be decoded only matters for json responses.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := h.upstream.UserThumbnails(gctx, roblox.ThumbnailRequest{
			Type:       p.Type,
			UserID:     p.UserID,
			Size:       p.Size,
			Format:     p.Format,
			IsCircular: p.IsCircular,
		})
		if roblox.IsStatusError(err) {
			log.Ctx(ctx).Debug().Err(err).Msg("thumbnail lookup rejected")
			return nil
		}
		thumbs = t
		return err
	})

	g.Go(func() error {
		u, err := h.upstream.User(gctx, p.UserID)
		if roblox.IsStatusError(err) {
			log.Ctx(ctx).Debug().Err(err).Msg("user lookup rejected")
			return nil
		}
		if roblox.IsDecodeError(err) {
			profileErr = err
			return nil
		}
		profile = u
		return err
	})

	if err := g.Wait(); err != nil {
		return Response{}, upstreamError(err)
	}

	if len(thumbs) == 0 || thumbs[0].ImageURL == "" {
		return Response{}, notFoundError(msgThumbnailNotFound)
	}
	thumb := thumbs[0]

	if p.ResponseType == ResponseImage {
		img, err := h.upstream.Image(ctx, thumb.ImageURL)
		if err != nil {
			return Response{}, upstreamError(err)
		}
		return imageResponse(img.ContentType, img.Data), nil
	}

	if profileErr != nil {
		return Response{}, upstreamError(profileErr)
	}

	if profile == nil {
		return Response{}, notFoundError(msgUserNotFound)
	}

	return jsonResponse(http.StatusOK, UserInfo{
		UserID:   profile.ID,
		Username: profile.Name,
		IsBanned: profile.IsBanned,
		ProfileInfo: ProfileInfo{
			Created:          profile.Created,
			HasVerifiedBadge: profile.HasVerifiedBadge,
			DisplayName:      profile.DisplayName,
			Description:      profile.Description,
		},
		AvatarThumbnail: AvatarThumbnail{
			ImageURL:   thumb.ImageURL,
			Type:       p.Type,
			Size:       p.Size,
			IsCircular: p.IsCircular,
			Format:     p.Format,
		},
	}, corsHeaders()), nil
}
