package lookup

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/prognoshealth/rbxlookup/proxy"
)

// NewRouter wires the handler into a gateway router. Lookups answer on any
// method and path and only read the query string; OPTIONS gets a CORS
// preflight and GET /health a liveness probe.
func NewRouter(h *Handler) *proxy.Router {
	router := &proxy.Router{}

	router.GET("/health", health)
	router.OPTIONS(".*", preflight)

	route, err := proxy.NewRoute(proxy.ANY, ".*", h.Route)
	if err == nil {
		route.IgnoreBody = true
	}
	router.AddRouteIfNoError(route, err)

	router.AddErrorHandler(routeError)

	return router
}

// Route adapts the handler to proxy.RouteHandler.
func (h *Handler) Route(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return h.ServeQuery(rctx.Context, rctx.Query()).ProxyResponse(), nil
}

func health(*proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return proxy.Text(http.StatusOK, "OK", nil), nil
}

func preflight(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	allowHeaders := rctx.Header("Access-Control-Request-Headers")
	if allowHeaders == "" {
		allowHeaders = "Accept, Content-Type"
	}

	return proxy.NoContent(map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, HEAD, OPTIONS",
		"Access-Control-Allow-Headers": allowHeaders,
		"Access-Control-Max-Age":       "300",
	}), nil
}

// routeError only sees failures to build a route context. The lookup route
// never reads the body, so none are expected in practice.
func routeError(ctx context.Context, request events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
	log.Ctx(ctx).Warn().Err(err).Str("path", request.RawPath).Msg("routing failed")
	return errorResponse(validationError(msgBadRequest)).ProxyResponse(), nil
}
