package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUserAgent is sent when a request carries no User-Agent.
const DefaultUserAgent = "cryptotracker/1.0"

// Client is a small wrapper around http.Client that fills default headers
// and logs each round trip at debug level.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
	Log       zerolog.Logger
}

// New returns a Client. A zero timeout leaves the request unbounded, which is
// the net/http default.
func New(timeout time.Duration) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyFromEnvironment
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: DefaultUserAgent,
		Log:       zerolog.Nop(),
	}
}

// Do sends req after applying default headers.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	res, err := c.HTTP.Do(req)
	ev := c.Log.Debug().
		Str("method", req.Method).
		Str("host", req.URL.Host).
		Str("path", req.URL.Path).
		Dur("elapsed", time.Since(start))
	if rid := req.Header.Get("X-Request-Id"); rid != "" {
		ev = ev.Str("request_id", rid)
	}
	if err != nil {
		err = RedactError(err)
		ev.Err(err).Msg("http request failed")
		return nil, err
	}
	ev.Int("status", res.StatusCode).Msg("http request")
	return res, nil
}

// RedactError drops the query string and userinfo from the URL held by a
// *url.Error. API keys travel as query parameters and must not reach error
// text or logs.
func RedactError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		uerr.URL = ""
		return err
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.User = nil
	uerr.URL = u.String()
	return err
}
