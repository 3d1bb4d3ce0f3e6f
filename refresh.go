package dugout

import (
	"context"
	"fmt"

	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/table"
)

// RefreshTable re-derives one reference table from the upstream service
// and swaps it into the cache. The year-by-year tables need the seasons
// to cover; the others ignore the argument. A refresh is all-or-
// nothing: any failed leaf aborts it and the previous file stays.
func (c *Client) RefreshTable(ctx context.Context, t refcache.Table, seasons []string) error {
	plan, err := c.planner.ReferenceRefresh(t, seasons)
	if err != nil {
		return err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return err
	}

	var merged *table.Table
	for _, label := range b.res.Labels() {
		if lerr := b.Err(label); lerr != nil {
			return fmt.Errorf("dugout: refresh %s: leaf %s: %w", t, label, lerr)
		}
		part := b.res.Table(label)
		if part == nil {
			return fmt.Errorf("dugout: refresh %s: leaf %s produced no table", t, label)
		}
		if merged == nil {
			merged = table.New(part.Columns()...)
		}
		if err := merged.Append(part); err != nil {
			return fmt.Errorf("dugout: refresh %s: merge %s: %w", t, label, err)
		}
	}
	// A reference table is never legitimately empty; an empty merge means
	// the upstream response shape changed. Keep the previous file.
	if merged == nil || merged.Len() == 0 {
		return fmt.Errorf("dugout: refresh %s: produced no rows, keeping previous file", t)
	}

	if err := c.cache.Update(t, merged); err != nil {
		return err
	}
	c.logger.Printf("refreshed %s: %d rows", t, merged.Len())
	return nil
}
