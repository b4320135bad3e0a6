package proxy

import (
	"encoding/base64"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// HTTPHandler serves router over net/http. Each request is converted into the
// events.APIGatewayV2HTTPRequest the gateway would have sent and the
// resulting events.APIGatewayProxyResponse is written back verbatim.
func HTTPHandler(router *Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := NewRequestFromHTTP(r)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("failed adapting http request")
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		response, err := router.Route(r.Context(), request)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Str("path", request.RawPath).Msg("route failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if err := WriteHTTPResponse(w, response); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Str("path", request.RawPath).Msg("failed writing response")
		}
	})
}

// NewRequestFromHTTP builds the gateway v2 event for r. The body is always
// carried base64 encoded so binary uploads survive.
func NewRequestFromHTTP(r *http.Request) (events.APIGatewayV2HTTPRequest, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayV2HTTPRequest{}, errors.Wrap(err, "failed reading request body")
		}
		body = b
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		query[k] = strings.Join(v, ",")
	}

	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	sourceIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		sourceIP = host
	}

	now := time.Now().UTC()

	request := events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              "$default",
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey:   "$default",
			Stage:      "$default",
			RequestID:  requestID,
			DomainName: r.Host,
			Time:       now.Format("02/Jan/2006:15:04:05 -0700"),
			TimeEpoch:  now.UnixMilli(),
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				Protocol:  r.Proto,
				SourceIP:  sourceIP,
				UserAgent: r.UserAgent(),
			},
		},
	}

	if len(body) > 0 {
		request.Body = base64.StdEncoding.EncodeToString(body)
		request.IsBase64Encoded = true
	}

	return request, nil
}

// WriteHTTPResponse writes a gateway response to w, decoding base64 bodies.
func WriteHTTPResponse(w http.ResponseWriter, response events.APIGatewayProxyResponse) error {
	body := []byte(response.Body)
	if response.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(response.Body)
		if err != nil {
			http.Error(w, "invalid response body", http.StatusInternalServerError)
			return errors.Wrap(err, "failed decoding response body")
		}
		body = b
	}

	for k, v := range response.Headers {
		w.Header().Set(k, v)
	}
	for k, values := range response.MultiValueHeaders {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	status := response.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)
	_, err := w.Write(body)
	return errors.Wrap(err, "failed writing response body")
}
