package proxy

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// JSON returns a response with v encoded as the body. The Content-Type header
// is set to application/json unless headers already carries one.
func JSON(status int, v interface{}, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrapf(err, "failed marshalling %T", v)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    withContentType(headers, "application/json"),
		Body:       string(body),
	}, nil
}

// Binary returns a response carrying raw bytes. The gateway only transports
// text so the body is base64 encoded and flagged as such.
func Binary(status int, contentType string, body []byte, headers map[string]string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      status,
		Headers:         withContentType(headers, contentType),
		Body:            base64.StdEncoding.EncodeToString(body),
		IsBase64Encoded: true,
	}
}

// Text returns a plain text response.
func Text(status int, body string, headers map[string]string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    withContentType(headers, "text/plain; charset=utf-8"),
		Body:       body,
	}
}

// NoContent returns a 204 response with only headers.
func NoContent(headers map[string]string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    copyHeaders(headers),
	}
}

func withContentType(headers map[string]string, contentType string) map[string]string {
	h := copyHeaders(headers)
	if headerValue(h, "Content-Type") == "" && contentType != "" {
		h["Content-Type"] = contentType
	}
	return h
}

func copyHeaders(headers map[string]string) map[string]string {
	h := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		h[k] = v
	}
	return h
}
