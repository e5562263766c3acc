package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"apod/pkg/client"
	"apod/pkg/consts"

	"github.com/sirupsen/logrus"
)

// pulls a date out of the query, ok is false when the parameter is absent
func getTimeParam(r *http.Request, name string) (t time.Time, ok bool, err error) {

	v := getStringParam(r, name)
	if v == "" {
		return time.Time{}, false, nil
	}

	t, err = time.Parse(consts.TimeFormat, v)
	return t, err == nil, err
}

func getStringParam(r *http.Request, name string) string {

	if r == nil {
		return ""
	}

	return r.URL.Query().Get(name)
}

func getBoolParam(r *http.Request, name string, def bool) (bool, error) {

	v := getStringParam(r, name)
	if v == "" {
		return def, nil
	}

	return strconv.ParseBool(v)
}

// copies the upstream quota to our response, unknown counters are left out
func setRateLimitHeaders(w http.ResponseWriter, rl client.RateLimitInfo) {
	if rl.Remaining >= 0 {
		w.Header().Set(consts.HeaderRateLimitRemaining, strconv.Itoa(rl.Remaining))
	}
	if rl.Limit >= 0 {
		w.Header().Set(consts.HeaderRateLimitLimit, strconv.Itoa(rl.Limit))
	}
}

// maps client errors onto the status and message we answer with. The
// messages are fixed, upstream error text may carry the request URL.
func replyFromError(err error) (int, string) {

	var statusErr *client.StatusError

	switch {
	case errors.Is(err, client.ErrRateLimit):
		return http.StatusTooManyRequests, "rate limit exceeded upstream, try again later"
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, fmt.Sprintf("upstream answered with status %d", statusErr.StatusCode)
	case errors.Is(err, client.ErrDecode):
		return http.StatusBadGateway, "upstream sent an unreadable picture"
	case errors.Is(err, client.ErrIO) && errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream did not answer in time"
	case errors.Is(err, client.ErrIO):
		return http.StatusBadGateway, "upstream is unreachable"
	}

	return http.StatusInternalServerError, "internal error"
}

// body of error replies
type Response struct {
	Message string `json:"message"`
}

func sendResponse(w http.ResponseWriter, status int, msg string) {
	sendJSON(w, status, Response{Message: msg})
}

func sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("error while sending response %q", err)
	}
}
