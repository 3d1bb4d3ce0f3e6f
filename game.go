package dugout

import (
	"context"

	"github.com/fortuna/dugout/gamefeed"
)

// Game fetches one live-feed document and wraps it as a snapshot. An
// empty timecode means "now"; a compact YYYYMMDD_HHMMSS timecode
// requests the game state at that moment. Unlike the multi-leaf
// bundles, a live-feed failure fails the call: there is no partial
// game.
func (c *Client) Game(ctx context.Context, gamePk int64, timecode string) (*gamefeed.Snapshot, error) {
	plan, err := c.planner.GameSnapshot(gamePk, timecode)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	lr, _ := b.res.Leaf("live-feed")
	if lr.Err != nil {
		return nil, lr.Err
	}
	return gamefeed.New(lr.Doc, c.cat), nil
}
