// Package client talks to NASA's "Astronomy Picture of the Day" API.
//
// A Client is immutable once built and may be shared by any number of
// goroutines. Each GetPicture call performs exactly one HTTP request; there
// are no retries and no caching.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"apod"
	"apod/pkg/consts"

	"github.com/sirupsen/logrus"
)

// Client is an APOD API client bound to one base URL and API key.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger requests are traced to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New builds a client for the public NASA endpoint using apiKey.
func New(apiKey string, opts ...Option) *Client {
	return NewWithConfig(consts.DefaultBaseURL, apiKey, opts...)
}

// NewWithConfig builds a client for baseURL using apiKey. The URL is only
// checked when a request is made.
func NewWithConfig(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		logger:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the endpoint the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetPicture retrieves the metadata of the picture published on date,
// together with the rate limit the server reported.
//
// An exhausted rate limit is reported as ErrRateLimit even when the
// response status is an error as well.
func (c *Client) GetPicture(ctx context.Context, date apod.Date, hd bool) (*apod.Metadata, RateLimitInfo, error) {

	u, err := c.buildURL(date, hd)
	if err != nil {
		return nil, RateLimitInfo{}, err
	}

	endpoint := u.Scheme + "://" + u.Host + u.Path
	log := c.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"date":     date.String(),
		"hd":       hd,
	})
	log.Debug("requesting picture metadata")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, RateLimitInfo{}, wrap(ErrIO, redactURL(err, endpoint))
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURL(err, endpoint)
		log.WithError(err).Debug("request failed")
		return nil, RateLimitInfo{}, wrap(ErrIO, err)
	}
	defer resp.Body.Close()

	limits := rateLimitFromHeaders(resp.Header)
	log = log.WithFields(logrus.Fields{
		"status":    resp.StatusCode,
		"remaining": limits.Remaining,
		"limit":     limits.Limit,
	})

	if limits.Remaining == 0 {
		log.Warn("rate limit exhausted")
		return nil, RateLimitInfo{}, ErrRateLimit
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("unexpected response status")
		return nil, RateLimitInfo{}, &StatusError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %q", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Debug("cannot read response")
		return nil, RateLimitInfo{}, wrap(ErrIO, redactURL(err, endpoint))
	}

	var md apod.Metadata
	if err := json.Unmarshal(body, &md); err != nil {
		log.WithError(err).Debug("cannot decode response")
		return nil, RateLimitInfo{}, wrap(ErrDecode, err)
	}

	log.WithField("title", md.Title).Debug("picture metadata received")
	return &md, limits, nil
}

// redactURL replaces the request URL carried by a *url.Error with endpoint,
// so the API key in the query never ends up in an error message.
func redactURL(err error, endpoint string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = endpoint
	}
	return err
}

// buildURL appends api_key, hd and date (in that order) to the base URL,
// after whatever query the base URL already carries.
func (c *Client) buildURL(date apod.Date, hd bool) (*url.URL, error) {

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, wrap(ErrInvalidURL, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, wrap(ErrInvalidURL, fmt.Errorf("%q is not an absolute URL", c.baseURL))
	}

	params := [][2]string{
		{consts.ParamApiKey, c.apiKey},
		{consts.ParamHd, strconv.FormatBool(hd)},
	}
	if d, ok := date.Param(); ok {
		params = append(params, [2]string{consts.ParamDate, d})
	}

	var q strings.Builder
	q.WriteString(u.RawQuery)
	for _, p := range params {
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p[0]))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p[1]))
	}

	u.RawQuery = q.String()
	return u, nil
}
