package aggregate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fortuna/dugout/fetch"
	"github.com/fortuna/dugout/table"
)

// ErrCancelled is returned when the caller's context ends before the
// bundle completes. No partial result accompanies it.
var ErrCancelled = errors.New("aggregate: request cancelled")

// Leaf is one endpoint call inside a plan: a label, the URL to fetch,
// and the projection to run on the decoded document. A nil Project keeps
// the raw document only (live feed).
type Leaf struct {
	Label   string
	URL     string
	Project func(doc map[string]any) (*table.Table, error)
}

// Plan is a bundle's static list of leaves. Leaf order is preserved into
// the result.
type Plan struct {
	Bundle string
	Leaves []Leaf
}

// LeafResult carries one leaf's outcome: its projected table and raw
// document on success, or the fetch/projection error.
type LeafResult struct {
	Label string
	URL   string
	Table *table.Table
	Doc   map[string]any
	Err   error
}

// Result is the labeled outcome of a bundle run. Partial success is a
// first-class state: any subset of leaves may carry errors.
type Result struct {
	Bundle string
	order  []string
	leaves map[string]LeafResult
}

// Labels returns leaf labels in plan order.
func (r *Result) Labels() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Leaf returns the result for a label.
func (r *Result) Leaf(label string) (LeafResult, bool) {
	lr, ok := r.leaves[label]
	return lr, ok
}

// Table returns the projected table for a label, or nil when the leaf is
// unknown, failed, or had no projection.
func (r *Result) Table(label string) *table.Table {
	return r.leaves[label].Table
}

// Doc returns the raw decoded document for a label, or nil.
func (r *Result) Doc(label string) map[string]any {
	return r.leaves[label].Doc
}

// Err returns the leaf's error, or nil on success.
func (r *Result) Err(label string) error {
	return r.leaves[label].Err
}

// Status reports per-label success (nil) or failure, letting callers
// distinguish "no data" from "fetch failed".
func (r *Result) Status() map[string]error {
	out := make(map[string]error, len(r.order))
	for _, label := range r.order {
		out[label] = r.leaves[label].Err
	}
	return out
}

// Aggregator fans a plan's leaves out through the fetch client and runs
// each leaf's projection. It is stateless apart from the injected client.
type Aggregator struct {
	fetcher *fetch.Client
}

// New builds an aggregator over the given fetch client.
func New(fetcher *fetch.Client) (*Aggregator, error) {
	if fetcher == nil {
		return nil, errors.New("aggregate: nil fetch client")
	}
	return &Aggregator{fetcher: fetcher}, nil
}

// Run executes the plan. Leaf failures land in the result; Run itself
// fails only on an empty plan or a cancelled context.
func (a *Aggregator) Run(ctx context.Context, plan Plan) (*Result, error) {
	if len(plan.Leaves) == 0 {
		return nil, fmt.Errorf("aggregate: empty plan for bundle %q", plan.Bundle)
	}

	urls := make([]string, len(plan.Leaves))
	for i, leaf := range plan.Leaves {
		urls[i] = leaf.URL
	}

	fetched := a.fetcher.GetMany(ctx, urls)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	res := &Result{
		Bundle: plan.Bundle,
		order:  make([]string, 0, len(plan.Leaves)),
		leaves: make(map[string]LeafResult, len(plan.Leaves)),
	}
	for i, leaf := range plan.Leaves {
		lr := LeafResult{Label: leaf.Label, URL: leaf.URL}
		f := fetched[i]
		if !f.OK() {
			lr.Err = f.Err
		} else {
			lr.Doc = f.Doc
			if leaf.Project != nil {
				tab, err := leaf.Project(f.Doc)
				if err != nil {
					lr.Err = fmt.Errorf("project %s: %w", leaf.Label, err)
				} else {
					lr.Table = tab
				}
			}
		}
		res.order = append(res.order, leaf.Label)
		res.leaves[leaf.Label] = lr
	}
	return res, nil
}
