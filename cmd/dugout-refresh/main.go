package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/dugout"
	"github.com/fortuna/dugout/fetch"
	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/scrape"
)

const (
	appName    = "dugout-refresh"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	var (
		cacheDir  = flag.String("cache", getEnv("DUGOUT_CACHE", ".dugout"), "Reference cache directory")
		tableList = flag.String("tables", "", "Comma-separated reference tables (default: all API-backed tables)")
		fromYear  = flag.Int("from", 1901, "First season for the year-by-year and WAR tables")
		toYear    = flag.Int("to", time.Now().Year(), "Last season for the year-by-year and WAR tables")
		rps       = flag.Float64("rps", 4, "Request rate limit against the stats service")
		timeout   = flag.Duration("timeout", 10*time.Minute, "Overall refresh deadline")
	)

	flag.Parse()

	tables, err := selectTables(*tableList)
	if err != nil {
		log.Fatalf("select tables: %v", err)
	}
	seasons := seasonRange(*fromYear, *toYear)

	client, err := dugout.NewClient(
		dugout.WithCacheDir(*cacheDir),
		dugout.WithFetcher(newFetcher(*rps)),
	)
	if err != nil {
		log.Fatalf("build client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var scraper *scrape.Client
	defer func() {
		if scraper != nil {
			scraper.Close()
		}
	}()

	failed := 0
	for i, t := range tables {
		log.Printf("[%d/%d] refreshing %s", i+1, len(tables), t)
		var rerr error
		switch t {
		case refcache.WARHitting, refcache.WARPitching:
			if scraper == nil {
				scraper = scrape.NewClient(log.Default())
			}
			rerr = scrape.RefreshWAR(ctx, scraper, client.Cache(), t, seasons)
		default:
			rerr = client.RefreshTable(ctx, t, seasons)
		}
		if rerr != nil {
			log.Printf("refresh %s failed: %v", t, rerr)
			failed++
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d tables failed", failed, len(tables))
	}
	log.Printf("all %d tables refreshed into %s", len(tables), *cacheDir)
}

// selectTables parses the --tables flag. An empty flag selects every
// table the stats service backs; the WAR tables must be asked for
// explicitly since they scrape a different source.
func selectTables(list string) ([]refcache.Table, error) {
	if list == "" {
		var out []refcache.Table
		for _, t := range refcache.All() {
			if t == refcache.WARHitting || t == refcache.WARPitching {
				continue
			}
			out = append(out, t)
		}
		return out, nil
	}

	known := make(map[refcache.Table]bool)
	for _, t := range refcache.All() {
		known[t] = true
	}
	var out []refcache.Table
	for _, name := range strings.Split(list, ",") {
		t := refcache.Table(strings.TrimSpace(name))
		if !known[t] {
			return nil, fmt.Errorf("unknown table %q", t)
		}
		out = append(out, t)
	}
	return out, nil
}

// newFetcher builds the fetch client a long bulk refresh wants: a rate
// cap and retries on transient failures.
func newFetcher(rps float64) *fetch.Client {
	return fetch.NewClient(
		fetch.WithRateLimit(rps),
		fetch.WithRetries(3),
		fetch.WithRetryOn(true, true),
	)
}

func seasonRange(from, to int) []string {
	var out []string
	for y := from; y <= to; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
