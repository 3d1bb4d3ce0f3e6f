// Package scrape pulls the WAR reference tables out of HTML stat pages.
// It tries a plain HTTP fetch first and falls back to a headless
// browser render when the site refuses non-browser clients.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	// UserAgent presented on every request.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval between fetches, to stay under the source's
	// rate limits.
	MinRequestInterval = 3 * time.Second

	fetchTimeout = 30 * time.Second
)

// Client fetches and parses HTML stat pages with rate limiting.
type Client struct {
	http     *http.Client
	interval time.Duration
	logger   *log.Logger

	mu          sync.Mutex
	lastRequest time.Time

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewClient creates a scrape client. The headless browser is allocated
// up front but only launched when a plain fetch is refused.
func NewClient(logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Client{
		http:     &http.Client{Timeout: fetchTimeout},
		interval: MinRequestInterval,
		logger:   logger,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Close releases the browser allocator.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// reserve claims the next request slot: at least interval after the
// previous claim, never in the past. Safe for concurrent callers; each
// gets a distinct slot.
func (c *Client) reserve(now time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.lastRequest.Add(c.interval)
	if c.lastRequest.IsZero() || next.Before(now) {
		next = now
	}
	c.lastRequest = next
	return next
}

// Get fetches a page and parses it. Rate limiting is enforced across
// calls on the same client, concurrent ones included.
func (c *Client) Get(ctx context.Context, url string) (*goquery.Document, error) {
	if wait := time.Until(c.reserve(time.Now())); wait > 0 {
		c.logger.Printf("[scrape] rate limiting: waiting %v", wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	html, err := c.fetchPlain(ctx, url)
	if err != nil {
		c.logger.Printf("[scrape] plain fetch of %s refused (%v), rendering", url, err)
		html, err = c.fetchRendered(ctx, url)
		if err != nil {
			return nil, err
		}
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func (c *Client) fetchPlain(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// fetchRendered loads the page in a headless browser so script-gated
// content is present in the returned HTML.
func (c *Client) fetchRendered(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, fetchTimeout)
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-browserCtx.Done():
		}
	}()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	if html == "" {
		return "", fmt.Errorf("render %s: empty document", url)
	}
	return html, nil
}
