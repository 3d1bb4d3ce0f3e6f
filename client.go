// Package dugout is a client library for baseball statistics. It fronts
// the MLB stats service with request bundles: one call builds a Person,
// Team, Franchise, League, or Game composite by fanning out the
// endpoint requests concurrently and projecting each response into a
// typed table. Reference data (team and player identity, historic
// standings, WAR) comes from an on-disk CSV cache.
package dugout

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fortuna/dugout/aggregate"
	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/fetch"
	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/table"
)

// Client is the facade over the fetch layer, the plan expander, and the
// reference cache. A single Client is safe for concurrent use.
type Client struct {
	cat     *catalog.Catalog
	fetcher *fetch.Client
	planner *aggregate.Planner
	agg     *aggregate.Aggregator
	cache   *refcache.Cache
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCacheDir points the reference cache at dir.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cache = refcache.New(dir) }
}

// WithFetcher replaces the HTTP fetch client (tests, custom limits).
func WithFetcher(f *fetch.Client) Option {
	return func(c *Client) { c.fetcher = f }
}

// WithBaseURLs points the client at a different upstream (tests).
func WithBaseURLs(base, liveBase string) Option {
	return func(c *Client) {
		c.planner = aggregate.NewPlanner(c.cat, aggregate.WithBaseURLs(base, liveBase))
	}
}

// WithLogger replaces the client's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client. Without options it talks to the production
// service with default fetch settings and caches reference data under
// ".dugout" in the working directory.
func NewClient(opts ...Option) (*Client, error) {
	cat := catalog.New()
	c := &Client{
		cat:     cat,
		planner: aggregate.NewPlanner(cat),
		cache:   refcache.New(".dugout"),
		logger:  log.New(os.Stderr, "[dugout] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = fetch.NewClient()
	}
	agg, err := aggregate.New(c.fetcher)
	if err != nil {
		return nil, fmt.Errorf("dugout: %w", err)
	}
	c.agg = agg
	return c, nil
}

// Catalog exposes the stat catalog the client projects with.
func (c *Client) Catalog() *catalog.Catalog { return c.cat }

// Cache exposes the reference cache for direct lookups.
func (c *Client) Cache() *refcache.Cache { return c.cache }

// bundle pairs a plan with its run result. Accessors on the composites
// fall back to an empty table with the leaf's full header when the leaf
// failed, so callers can always iterate.
type bundle struct {
	plan aggregate.Plan
	res  *aggregate.Result
}

func (b *bundle) table(label string) *table.Table {
	if t := b.res.Table(label); t != nil {
		return t
	}
	for _, leaf := range b.plan.Leaves {
		if leaf.Label == label && leaf.Project != nil {
			if t, err := leaf.Project(nil); err == nil {
				return t
			}
		}
	}
	return table.New()
}

// Status reports per-leaf success (nil) or failure in plan order keys.
func (b *bundle) Status() map[string]error { return b.res.Status() }

// Err returns one leaf's error, or nil.
func (b *bundle) Err(label string) error { return b.res.Err(label) }

func (c *Client) run(ctx context.Context, plan aggregate.Plan) (bundle, error) {
	res, err := c.agg.Run(ctx, plan)
	if err != nil {
		return bundle{}, err
	}
	for label, lerr := range res.Status() {
		if lerr != nil {
			c.logger.Printf("bundle %s: leaf %s failed: %v", plan.Bundle, label, lerr)
		}
	}
	return bundle{plan: plan, res: res}, nil
}

// Schedule returns the league-wide schedule for one date (YYYY-MM-DD),
// one row per game.
func (c *Client) Schedule(ctx context.Context, date string) (*table.Table, error) {
	plan, err := c.planner.DaySchedule(date)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	if lerr := b.Err("schedule"); lerr != nil {
		return nil, lerr
	}
	return b.table("schedule"), nil
}
