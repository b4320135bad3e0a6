package lookup

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prognoshealth/rbxlookup/roblox"
)

// DefaultGamePageURL prefixes the place id in the url field of game lookups.
const DefaultGamePageURL = "https://www.roblox.com/games/"

// Upstream is the set of Roblox resources a lookup may need.
// *roblox.Client satisfies it.
type Upstream interface {
	PlaceDetails(ctx context.Context, placeID string) ([]roblox.PlaceDetails, error)
	User(ctx context.Context, userID string) (*roblox.User, error)
	UserThumbnails(ctx context.Context, r roblox.ThumbnailRequest) ([]roblox.Thumbnail, error)
	Image(ctx context.Context, imageURL string) (*roblox.Image, error)
}

// Handler answers lookups against an Upstream.
type Handler struct {
	upstream    Upstream
	gamePageURL string
}

// Option customises a Handler.
type Option func(*Handler)

// WithGamePageURL overrides DefaultGamePageURL.
func WithGamePageURL(u string) Option {
	return func(h *Handler) {
		if u == "" {
			return
		}
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		h.gamePageURL = u
	}
}

// NewHandler returns a Handler backed by upstream.
func NewHandler(upstream Upstream, opts ...Option) *Handler {
	h := &Handler{
		upstream:    upstream,
		gamePageURL: DefaultGamePageURL,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ServeQuery parses q and runs the lookup. It always returns a response.
func (h *Handler) ServeQuery(ctx context.Context, q url.Values) Response {
	p, err := ParseParams(q)
	if err != nil {
		e := asError(err)
		log.Ctx(ctx).Debug().Str("mode", string(p.Mode)).Str("reason", e.Message).Msg("rejected lookup")
		return errorResponse(e)
	}

	return h.Handle(ctx, p)
}

// Handle runs the lookup for validated params. Any failure, including a panic
// in the flow, is turned into an error response.
func (h *Handler) Handle(ctx context.Context, p Params) (resp Response) {
	start := time.Now()
	logger := log.Ctx(ctx).With().
		Str("mode", string(p.Mode)).
		Str("response_type", string(p.ResponseType)).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(upstreamError(fmt.Errorf("panic: %v", r)))
			logger.Error().Interface("panic", r).Msg("lookup panicked")
		}

		logger.Info().
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("lookup")
	}()

	var err error
	switch p.Mode {
	case ModeGame:
		logger = logger.With().Str("place_id", p.PlaceID).Logger()
		resp, err = h.game(ctx, p)
	case ModeUser:
		logger = logger.With().Str("user_id", p.UserID).Logger()
		resp, err = h.user(ctx, p)
	default:
		err = validationError(msgModeInvalid)
	}

	if err != nil {
		e := asError(err)
		if e.Kind == UpstreamFailure {
			logger.Error().Err(e.Err).Msg("upstream failure")
		}
		return errorResponse(e)
	}

	return resp
}
