package lookup

import (
	"net/url"
	"strconv"
)

// Mode selects between the game and user flows.
type Mode string

const (
	ModeGame Mode = "game"
	ModeUser Mode = "user"
)

// ResponseType selects between JSON and raw image output.
type ResponseType string

const (
	ResponseJSON  ResponseType = "json"
	ResponseImage ResponseType = "image"
)

// Defaults applied when a parameter is absent or empty.
const (
	DefaultResponseType  = ResponseJSON
	DefaultThumbnailType = "avatar"
	DefaultSize          = 420
	DefaultFormat        = "Png"
)

// Params is the typed form of the lookup query string.
type Params struct {
	Mode         Mode
	ResponseType ResponseType
	PlaceID      string
	UserID       string

	// Thumbnail rendering, user mode only.
	Type       string
	IsCircular bool
	Size       int
	Format     string
}

// ParseParams coerces query values into Params. Only the first value of a
// repeated key is used and empty values count as absent. The returned error is
// always a Validation *Error.
func ParseParams(q url.Values) (Params, error) {
	p := Params{
		Mode:         Mode(q.Get("mode")),
		ResponseType: ResponseType(valueOr(q, "responseType", string(DefaultResponseType))),
		PlaceID:      q.Get("placeId"),
		UserID:       q.Get("userId"),
		Type:         valueOr(q, "type", DefaultThumbnailType),
		Size:         DefaultSize,
		Format:       valueOr(q, "format", DefaultFormat),
	}

	switch {
	case p.Mode == "":
		return p, validationError(msgModeMissing)
	case p.Mode == ModeGame && p.PlaceID == "":
		return p, validationError(msgPlaceIDMissing)
	case p.Mode == ModeUser && p.UserID == "":
		return p, validationError(msgUserIDMissing)
	case p.Mode != ModeGame && p.Mode != ModeUser:
		return p, validationError(msgModeInvalid)
	}

	if p.Mode != ModeUser {
		return p, nil
	}

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return p, validationError(msgSizeInvalid)
		}
		p.Size = size
	}

	if v := q.Get("isCircular"); v != "" {
		circular, err := strconv.ParseBool(v)
		if err != nil {
			return p, validationError(msgCircularInvalid)
		}
		p.IsCircular = circular
	}

	return p, nil
}

func valueOr(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return fallback
}
