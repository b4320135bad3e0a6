package lookup

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/prognoshealth/rbxlookup/proxy"
)

const imageCacheControl = "public, max-age=300, stale-while-revalidate=60"

// Response describes what to send back. Binary bodies are raw bytes, every
// other body is JSON.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Binary     bool
}

// GameInfo is the JSON body of a successful game lookup.
type GameInfo struct {
	PlaceID     int64  `json:"placeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Visits      int64  `json:"visits"`
	Favorites   int64  `json:"favorites"`
	URL         string `json:"url"`
}

// UserInfo is the JSON body of a successful user lookup.
type UserInfo struct {
	UserID          int64           `json:"userId"`
	Username        string          `json:"username"`
	IsBanned        bool            `json:"isBanned"`
	ProfileInfo     ProfileInfo     `json:"profileInfo"`
	AvatarThumbnail AvatarThumbnail `json:"avatarThumbnail"`
}

// ProfileInfo is the profile section of a user lookup.
type ProfileInfo struct {
	Created          string `json:"created"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
	DisplayName      string `json:"displayName"`
	Description      string `json:"description"`
}

// AvatarThumbnail echoes the effective rendering parameters.
type AvatarThumbnail struct {
	ImageURL   string `json:"imageUrl"`
	Type       string `json:"type"`
	Size       int    `json:"size"`
	IsCircular bool   `json:"isCircular"`
	Format     string `json:"format"`
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func corsHeaders() map[string]string {
	return map[string]string{"Access-Control-Allow-Origin": "*"}
}

func jsonResponse(status int, v interface{}, headers map[string]string) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResponse(upstreamError(err))
	}

	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"

	return Response{StatusCode: status, Headers: headers, Body: body}
}

func imageResponse(contentType string, data []byte) Response {
	headers := corsHeaders()
	headers["Content-Type"] = contentType
	headers["Cache-Control"] = imageCacheControl

	return Response{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       data,
		Binary:     true,
	}
}

func errorResponse(e *Error) Response {
	body := errorBody{Error: e.Message}
	if e.Kind == UpstreamFailure && e.Err != nil {
		body.Details = e.Err.Error()
	}

	// errorBody always marshals.
	b, _ := json.Marshal(body)

	return Response{
		StatusCode: e.Kind.StatusCode(),
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       b,
	}
}

// ProxyResponse converts r into the gateway response shape.
func (r Response) ProxyResponse() events.APIGatewayProxyResponse {
	if r.Binary {
		return proxy.Binary(r.StatusCode, r.Headers["Content-Type"], r.Body, r.Headers)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
