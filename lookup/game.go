package lookup

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prognoshealth/rbxlookup/roblox"
)

func (h *Handler) game(ctx context.Context, p Params) (Response, error) {
	// Games have no image form, so there is no point asking upstream.
	if p.ResponseType != ResponseJSON {
		return Response{}, validationError(msgGameResponseType)
	}

	places, err := h.upstream.PlaceDetails(ctx, p.PlaceID)
	if err != nil {
		if roblox.IsStatusError(err) {
			return Response{}, notFoundError(msgGameNotFound)
		}
		return Response{}, upstreamError(err)
	}

	if len(places) == 0 {
		return Response{}, notFoundError(msgGameNotFound)
	}

	place := places[0]

	return jsonResponse(http.StatusOK, GameInfo{
		PlaceID:     place.ID,
		Name:        place.Name,
		Description: place.Description,
		Visits:      place.Visits,
		Favorites:   place.FavoritesCount,
		URL:         h.gamePageURL + strconv.FormatInt(place.ID, 10),
	}, corsHeaders()), nil
}
