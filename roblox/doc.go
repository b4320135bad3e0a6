// Package roblox fetches the handful of public Roblox web API resources the
// lookup endpoint aggregates: place details, user profiles, avatar thumbnails
// and the rendered thumbnail images themselves.
//
// It is intentionally not a general API client. Each method maps to exactly
// one upstream endpoint and returns the decoded record or a *StatusError when
// the upstream answered with a non-2xx status.
package roblox
