package client

import (
	"net/http"
	"strconv"

	"apod/pkg/consts"
)

// RateLimitInfo holds the quota the server reports for the API key and
// caller IP. Fields are -1 when the server did not send them.
type RateLimitInfo struct {
	// Remaining requests for this API key and IP address.
	Remaining int
	// Limit for this API key and IP address.
	Limit int
}

// Known reports whether both counters were present in the response.
func (r RateLimitInfo) Known() bool {
	return r.Remaining >= 0 && r.Limit >= 0
}

func rateLimitFromHeaders(h http.Header) RateLimitInfo {
	return RateLimitInfo{
		Remaining: headerInt(h, consts.HeaderRateLimitRemaining),
		Limit:     headerInt(h, consts.HeaderRateLimitLimit),
	}
}

// headerInt reads a 32-bit integer header, falling back to -1.
func headerInt(h http.Header, name string) int {
	v, err := strconv.ParseInt(h.Get(name), 10, 32)
	if err != nil {
		return -1
	}
	return int(v)
}
