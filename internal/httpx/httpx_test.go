package httpx_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cryptotracker/internal/httpx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestClientDo_DefaultHeaders(t *testing.T) {
	t.Parallel()

	// Arrange: a server that echoes what it received
	received := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c := httpx.New(5 * time.Second)
	c.Headers = map[string]string{"X-Extra": "1"}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, http.NoBody)
	require.NoError(t, err)

	// Act
	res, err := c.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	// Assert
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	got := <-received
	require.Equal(t, httpx.DefaultUserAgent, got.Get("User-Agent"))
	require.Equal(t, "1", got.Get("X-Extra"))
	require.Equal(t, 5*time.Second, c.HTTP.Timeout)
}

func TestClientDo_KeepsCallerHeaders(t *testing.T) {
	t.Parallel()

	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Get("User-Agent")
	}))
	t.Cleanup(srv.Close)

	c := httpx.New(0)
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, http.NoBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom/2.0")

	// Act
	res, err := c.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	// Assert: an explicit header wins, and no timeout is imposed by default
	require.Equal(t, "custom/2.0", <-received)
	require.Zero(t, c.HTTP.Timeout)
}

func TestClientDo_LogsRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	c := httpx.New(0)
	c.Log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/coins/markets?x_cg_demo_api_key=secret", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc")

	// Act
	res, err := c.Do(req)
	require.NoError(t, err)
	res.Body.Close()

	// Assert
	require.Contains(t, buf.String(), `"status":418`)
	require.Contains(t, buf.String(), `"request_id":"abc"`)
	require.Contains(t, buf.String(), `"path":"/coins/markets"`)
	require.NotContains(t, buf.String(), "secret")
}

func TestClientDo_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := httpx.New(time.Second)
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, base, http.NoBody)
	require.NoError(t, err)

	// Act
	res, err := c.Do(req)

	// Assert
	require.Error(t, err)
	require.Nil(t, res)
}

func TestClientDo_TransportErrorOmitsQuery(t *testing.T) {
	t.Parallel()

	// Arrange: a closed server and a key carried in the query
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	var buf bytes.Buffer
	c := httpx.New(time.Second)
	c.Log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, base+"/coins/markets?ids=bitcoin&x_cg_demo_api_key=SECRETKEY123", http.NoBody)
	require.NoError(t, err)

	// Act
	_, err = c.Do(req)

	// Assert: neither the error nor the log carries the key
	require.Error(t, err)
	require.NotContains(t, err.Error(), "SECRETKEY123")
	require.Contains(t, err.Error(), "/coins/markets")
	require.Contains(t, buf.String(), "http request failed")
	require.NotContains(t, buf.String(), "SECRETKEY123")
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	err := httpx.RedactError(&url.Error{
		Op:  "Get",
		URL: "https://user:pw@api.example.com/coins/markets?x_cg_demo_api_key=k1",
		Err: errors.New("boom"),
	})
	require.EqualError(t, err, `Get "https://api.example.com/coins/markets": boom`)

	plain := errors.New("plain")
	require.Same(t, plain, httpx.RedactError(plain))
}
