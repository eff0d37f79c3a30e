package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dtnitsch/web-text-organizer/pkg/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_GetHtmlBytes(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		f := fetcher.NewFetcher(fetcher.WithUserAgent("wto-test/1.0"))
		resp, err := f.GetHtmlBytes(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(resp.Body))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "wto-test/1.0", gotUA)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("<p>ok</p>"))
		}))
		defer server.Close()

		resp, err := fetcher.NewFetcher().GetHtmlBytes(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", string(resp.Body))
	})

	t.Run("decodes declared charset to utf-8", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>caf\xe9</p>"))
		}))
		defer server.Close()

		resp, err := fetcher.NewFetcher().GetHtmlBytes(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>café</p>", string(resp.Body))
	})

	t.Run("non-2xx status is a fetch error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := fetcher.NewFetcher().GetHtmlBytes(context.Background(), server.URL)
		require.Error(t, err)

		var fetchErr *fetcher.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("timeout is a fetch error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		f := fetcher.NewFetcher(fetcher.WithTimeout(10 * time.Millisecond))
		_, err := f.GetHtmlBytes(context.Background(), server.URL)

		var fetchErr *fetcher.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Zero(t, fetchErr.StatusCode)
	})

	t.Run("malformed url is a fetch error", func(t *testing.T) {
		t.Parallel()

		_, err := fetcher.NewFetcher().GetHtmlBytes(context.Background(), "https://bad host/")
		var fetchErr *fetcher.FetchError
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("cancelled context is a fetch error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.NewFetcher().GetHtmlBytes(ctx, "http://example.invalid/")
		var fetchErr *fetcher.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
