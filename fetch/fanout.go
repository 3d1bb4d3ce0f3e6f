package fetch

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	backoffBase = 200 * time.Millisecond
	backoffCap  = 2 * time.Second
)

// GetMany executes every URL concurrently, bounded by the client's
// concurrency cap, and returns results in input order. Each leaf carries
// its own outcome; retryable failures (timeout, 5xx by default) are
// re-attempted up to the configured retry count with jittered exponential
// backoff. Context cancellation aborts all in-flight requests.
func (c *Client) GetMany(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	if len(urls) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(c.maxConcurrency)
	var wg sync.WaitGroup
	for i, url := range urls {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{URL: url, Status: StatusNetwork, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = c.getWithRetry(ctx, url)
		}(i, url)
	}
	wg.Wait()
	return results
}

func (c *Client) getWithRetry(ctx context.Context, url string) Result {
	res := c.GetOne(ctx, url)
	for attempt := 0; attempt < c.retries && c.retryable(res); attempt++ {
		select {
		case <-ctx.Done():
			return res
		case <-time.After(backoffDelay(attempt)):
		}
		res = c.GetOne(ctx, url)
	}
	return res
}

// retryable applies the retry policy: timeouts and 5xx responses only.
// 4xx and decode failures are never retried.
func (c *Client) retryable(res Result) bool {
	switch res.Status {
	case StatusTimeout:
		return c.retryTimeout
	case StatusHTTPError:
		return c.retry5xx && res.HTTPStatus >= 500
	}
	return false
}

// backoffDelay doubles from 200ms, capped at 2s, jittered +/-20%.
func backoffDelay(attempt int) time.Duration {
	d := backoffBase << attempt
	if d > backoffCap {
		d = backoffCap
	}
	jitter := 1 + (rand.Float64()*0.4 - 0.2)
	return time.Duration(float64(d) * jitter)
}
