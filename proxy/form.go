package proxy

import (
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

const formContentType = "application/x-www-form-urlencoded"

// extractParamsFromFormPost adds the key/value pairs of an urlencoded POST body
// to params. Requests that are not form posts are left alone.
func (route *Route) extractParamsFromFormPost(params map[string]string, request events.APIGatewayV2HTTPRequest) error {
	if !POST.Matches(request.RequestContext.HTTP.Method) {
		return nil
	}

	contentType := headerValue(request.Headers, "content-type")
	if !strings.HasPrefix(strings.ToLower(contentType), formContentType) {
		return nil
	}

	body, err := (&RouteContext{Request: request}).Body()
	if err != nil {
		return err
	}

	if body == "" {
		return nil
	}

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found {
			return errors.Errorf("invalid key/value pair '%s'", pair)
		}

		k, err := url.QueryUnescape(key)
		if err != nil {
			return errors.Wrapf(err, "unable to decode key '%s'", key)
		}

		v, err := url.QueryUnescape(value)
		if err != nil {
			return errors.Wrapf(err, "unable to decode value '%s'", value)
		}

		params[k] = v
	}

	return nil
}

// headerValue does a case-insensitive lookup. API Gateway v2 lowercases header
// names but direct invocations and tests may not.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}

	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}

	return ""
}
