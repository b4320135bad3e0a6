package lookup_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prognoshealth/rbxlookup/lookup"
	"github.com/prognoshealth/rbxlookup/proxy"
	"github.com/prognoshealth/rbxlookup/roblox"
)

var avatarPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0xde, 0xad}

func fakeRoblox(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/games/multiget-place-details", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("placeIds") != "123" {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprint(w, `[{"id":123,"name":"X","description":"d","visits":10,"favoritesCount":5}]`)
	})
	mux.HandleFunc("/v1/users/42", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":42,"name":"bob","isBanned":false,"created":"2020-01-01","hasVerifiedBadge":true,"displayName":"Bob","description":"hi"}`)
	})
	mux.HandleFunc("/v1/users/43", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>`)
	})
	mux.HandleFunc("/v1/users/avatar", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("userIds")
		if id != "42" && id != "43" {
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		fmt.Fprintf(w, `{"data":[{"targetId":%s,"state":"Completed","imageUrl":"%s/render/42.png","version":"TN3"}]}`, id, server.URL)
	})
	mux.HandleFunc("/render/42.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(avatarPNG)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newLookupServer(t *testing.T) *httptest.Server {
	t.Helper()

	upstream := fakeRoblox(t)

	client := roblox.NewClient(roblox.Options{
		HTTPClient:    upstream.Client(),
		GamesURL:      upstream.URL,
		UsersURL:      upstream.URL,
		ThumbnailsURL: upstream.URL,
	})

	server := httptest.NewServer(proxy.HTTPHandler(lookup.NewRouter(lookup.NewHandler(client))))
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, u string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestLookup_game(t *testing.T) {
	server := newLookupServer(t)

	resp, body := get(t, server.URL+"/api/lookup?mode=game&placeId=123")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"placeId":123,"name":"X","description":"d","visits":10,"favorites":5,"url":"https://www.roblox.com/games/123"}`, string(body))
}

func TestLookup_gameNotFound(t *testing.T) {
	server := newLookupServer(t)

	resp, body := get(t, server.URL+"/api/lookup?mode=game&placeId=999")

	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Game details not found"}`, string(body))
}

func TestLookup_userJSON(t *testing.T) {
	server := newLookupServer(t)

	resp, body := get(t, server.URL+"/api/lookup?mode=user&mode=game&userId=42")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"username":"bob"`)
	assert.Contains(t, string(body), `"imageUrl":"`)
}

func TestLookup_userImage(t *testing.T) {
	server := newLookupServer(t)

	resp, body := get(t, server.URL+"/api/lookup?mode=user&userId=42&responseType=image")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=60", resp.Header.Get("Cache-Control"))
	assert.Equal(t, avatarPNG, body)
}

func TestLookup_userImageWithUnreadableProfile(t *testing.T) {
	server := newLookupServer(t)

	resp, body := get(t, server.URL+"/api/lookup?mode=user&userId=43&responseType=image")

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, avatarPNG, body)

	resp, body = get(t, server.URL+"/api/lookup?mode=user&userId=43")

	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, string(body), `"details":"failed decoding response from `)
}

func TestLookup_userProfileMissing(t *testing.T) {
	server := newLookupServer(t)

	// The thumbnail endpoint answers with no data for unknown users before the
	// missing profile matters.
	resp, body := get(t, server.URL+"/api/lookup?mode=user&userId=7")

	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Thumbnail data not found"}`, string(body))
}

func TestLookup_upstreamDown(t *testing.T) {
	client := roblox.NewClient(roblox.Options{GamesURL: "http://127.0.0.1:1"})

	server := httptest.NewServer(proxy.HTTPHandler(lookup.NewRouter(lookup.NewHandler(client))))
	t.Cleanup(server.Close)

	resp, body := get(t, server.URL+"/?mode=game&placeId=123")

	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, string(body), `"error":"Failed to fetch from Roblox"`)
	assert.Contains(t, string(body), `"details":"failed requesting http://127.0.0.1:1/v1/games/multiget-place-details?placeIds=123`)
}
