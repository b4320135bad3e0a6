package proxy

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayV2HTTPRequest
	Params  map[string]string
}

// Body returns a string representation of the request body
func (ctx *RouteContext) Body() (string, error) {
	if ctx.Request.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(ctx.Request.Body)
		if err != nil {
			return "", errors.Wrapf(err, "unable to decode request body for request %v", ctx.Request.RequestContext.RequestID)
		}

		return string(b), nil
	}

	return ctx.Request.Body, nil
}

// Query returns every value of every query string parameter in the order they
// were sent.
func (ctx *RouteContext) Query() url.Values {
	return queryValues(ctx.Request)
}

// Header returns the value of the named request header, ignoring case.
func (ctx *RouteContext) Header(name string) string {
	return headerValue(ctx.Request.Headers, name)
}

// queryValues prefers the raw query string since it keeps repeated keys
// apart. The gateway's parsed map joins repeated values with commas, so that
// form is split back up when the raw string is missing.
func queryValues(request events.APIGatewayV2HTTPRequest) url.Values {
	if request.RawQueryString != "" {
		// ParseQuery returns everything it could parse alongside the first
		// error; a single bad pair should not drop the rest.
		values, _ := url.ParseQuery(request.RawQueryString)
		return values
	}

	values := url.Values{}
	for key, joined := range request.QueryStringParameters {
		values[key] = strings.Split(joined, ",")
	}

	return values
}
