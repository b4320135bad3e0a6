package proxy

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteContext_Body(t *testing.T) {
	request := testRequest(POST, "/yolo")
	request.Body = "some content"

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, "some content", actual)
}

func TestRouteContext_Body_encoded(t *testing.T) {
	request := testRequest(POST, "/yolo")
	request.Body = base64.StdEncoding.EncodeToString([]byte("hey dude!"))
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, "hey dude!", actual)
}

func TestRouteContext_Body_error(t *testing.T) {
	request := testRequest(POST, "/yolo")
	request.Body = "sefdfxsdf.d.dsd"
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	_, err := ctx.Body()

	assert.Error(t, err)
}

func TestRouteContext_Query(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		parsed   map[string]string
		expected url.Values
	}{
		{"raw", "mode=game&mode=user&size=150", nil, url.Values{"mode": {"game", "user"}, "size": {"150"}}},
		{"parsed", "", map[string]string{"mode": "game,user"}, url.Values{"mode": {"game", "user"}}},
		{"raw wins", "mode=user", map[string]string{"mode": "game"}, url.Values{"mode": {"user"}}},
		{"empty", "", nil, url.Values{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			request := testRequest(GET, "/yolo")
			request.RawQueryString = c.raw
			request.QueryStringParameters = c.parsed

			ctx := &RouteContext{Request: request}

			assert.Equal(t, c.expected, ctx.Query())
		})
	}
}

func TestRouteContext_Header(t *testing.T) {
	request := testRequest(GET, "/yolo")
	request.Headers["x-forwarded-for"] = "10.1.1.1"
	request.Headers["Accept"] = "image/png"

	ctx := &RouteContext{Request: request}

	assert.Equal(t, "10.1.1.1", ctx.Header("X-Forwarded-For"))
	assert.Equal(t, "image/png", ctx.Header("accept"))
	assert.Equal(t, "", ctx.Header("missing"))
}
