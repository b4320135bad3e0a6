package proxy

import "strings"

// HttpMethod is an enum of the standard Http Methods.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// ANY matches every method. It is only meaningful on a Route.
	ANY
)

var httpMethodNames = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
	ANY:     "ANY",
}

func (m HttpMethod) String() string {
	if m < 0 || int(m) >= len(httpMethodNames) {
		return "UNKNOWN"
	}
	return httpMethodNames[m]
}

// Matches reports whether the method accepts the given request method.
func (m HttpMethod) Matches(method string) bool {
	if m == ANY {
		return true
	}
	return strings.EqualFold(m.String(), method)
}
