package artpdf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetURL(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		url, err := parseTargetURL("  https://mp.weixin.qq.com/s/abc  ")
		require.NoError(t, err)
		assert.Equal(t, "https://mp.weixin.qq.com/s/abc", url.String())
	})

	t.Run("url without scheme", func(t *testing.T) {
		url, err := parseTargetURL("mp.weixin.qq.com/s/abc")
		require.NoError(t, err)
		assert.Equal(t, "https://mp.weixin.qq.com/s/abc", url.String())
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := parseTargetURL("   ")
		assert.True(t, errors.Is(err, ErrEmptyURL))
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		_, err := parseTargetURL("ftp://example.com/file")
		assert.True(t, errors.Is(err, ErrInvalidURL))
	})

	t.Run("missing host", func(t *testing.T) {
		_, err := parseTargetURL("https://")
		assert.True(t, errors.Is(err, ErrInvalidURL))
	})
}

func TestFetchPage(t *testing.T) {
	client := newHTTPClient(DefaultConfig())

	t.Run("sends user agent and returns body", func(t *testing.T) {
		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.UserAgent()
			_, _ = w.Write([]byte("<html>hello</html>"))
		}))
		defer server.Close()

		url, _ := parseTargetURL(server.URL)
		pg, err := fetchPage(context.Background(), client, url, DefaultUserAgent)
		require.NoError(t, err)

		assert.Equal(t, DefaultUserAgent, userAgent)
		assert.Equal(t, "<html>hello</html>", string(pg.Body))
		assert.Equal(t, server.URL, pg.URL.String())
	})

	t.Run("returns final url after redirect", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/s/article", http.StatusFound)
		})
		mux.HandleFunc("/s/article", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("article"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		url, _ := parseTargetURL(server.URL + "/short")
		pg, err := fetchPage(context.Background(), client, url, DefaultUserAgent)
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/s/article", pg.URL.String())
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer server.Close()

		url, _ := parseTargetURL(server.URL)
		pg, err := fetchPage(context.Background(), client, url, DefaultUserAgent)
		assert.Nil(t, pg)
		assert.True(t, errors.Is(err, ErrFetch))

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("timeout is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		cfg := DefaultConfig()
		cfg.RequestTimeout = 20 * time.Millisecond

		url, _ := parseTargetURL(server.URL)
		_, err := fetchPage(context.Background(), newHTTPClient(cfg), url, DefaultUserAgent)
		assert.True(t, errors.Is(err, ErrFetch))
	})

	t.Run("connection failure is an error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url, _ := parseTargetURL(server.URL)
		server.Close()

		_, err := fetchPage(context.Background(), client, url, DefaultUserAgent)
		assert.True(t, errors.Is(err, ErrFetch))
	})
}
