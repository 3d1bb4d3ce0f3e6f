package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOneDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"copyright":"x","totalSize":2}`)
	}))
	defer srv.Close()

	res := NewClient().GetOne(context.Background(), srv.URL)
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.Equal(t, http.StatusOK, res.HTTPStatus)
	assert.Equal(t, float64(2), res.Doc["totalSize"])
}

func TestGetOneHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	res := NewClient().GetOne(context.Background(), srv.URL)
	require.False(t, res.OK())
	assert.Equal(t, StatusHTTPError, res.Status)

	var httpErr *HTTPError
	require.True(t, errors.As(res.Err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestGetOneDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"broken":`)
	}))
	defer srv.Close()

	res := NewClient().GetOne(context.Background(), srv.URL)
	require.False(t, res.OK())
	assert.Equal(t, StatusDecodeError, res.Status)

	var decErr *DecodeError
	assert.True(t, errors.As(res.Err, &decErr))
}

func TestGetManyPreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	}))
	defer srv.Close()

	urls := make([]string, 10)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/leaf/%d", srv.URL, i)
	}

	results := NewClient().GetMany(context.Background(), urls)
	require.Len(t, results, len(urls))
	for i, res := range results {
		require.True(t, res.OK(), "leaf %d: %v", i, res.Err)
		assert.Equal(t, fmt.Sprintf("/leaf/%d", i), res.Doc["path"])
	}
}

func TestGetManyConcurrencyCap(t *testing.T) {
	var inFlight, peak int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	urls := make([]string, 12)
	for i := range urls {
		urls[i] = srv.URL
	}

	c := NewClient(WithMaxConcurrency(3))
	results := c.GetMany(context.Background(), urls)
	for _, res := range results {
		require.True(t, res.OK())
	}
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}

func TestGetManyRetriesOn5xx(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := NewClient(WithRetries(2), WithRetryOn(false, true))
	results := c.GetMany(context.Background(), []string{srv.URL})
	require.True(t, results[0].OK(), "expected retry to succeed: %v", results[0].Err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}

func TestGetManyDoesNotRetry4xx(t *testing.T) {
	var attempts int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		http.Error(w, "no", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithRetries(3))
	results := c.GetMany(context.Background(), []string{srv.URL})
	require.False(t, results[0].OK())
	assert.Equal(t, StatusHTTPError, results[0].Status)
	assert.Equal(t, int64(1), atomic.LoadInt64(&attempts))
}

func TestGetOneTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewClient(WithTimeout(20 * time.Millisecond))
	res := c.GetOne(context.Background(), srv.URL)
	require.False(t, res.OK())
	assert.Equal(t, StatusTimeout, res.Status)
}
