package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a content item id is unknown to the catalog.
var ErrNotFound = errors.New("content item not found")

// Fetcher resolves content item ids for the session screen.
type Fetcher interface {
	// Get returns the content item for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*ContentItem, error)
}

// Catalog holds content items with precomputed indices.
type Catalog struct {
	items     []ContentItem
	byID      map[string]*ContentItem
	bySubject map[Subject][]ContentItem
}

var _ Fetcher = (*Catalog)(nil)

// New builds a Catalog from a slice of content items.
// Duplicate ids are rejected.
func New(items []ContentItem) (*Catalog, error) {
	c := &Catalog{
		items:     items,
		byID:      make(map[string]*ContentItem, len(items)),
		bySubject: make(map[Subject][]ContentItem),
	}
	for i := range c.items {
		item := &c.items[i]
		if item.ID == "" {
			return nil, fmt.Errorf("content item %d has empty id", i)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate content item id %q", item.ID)
		}
		c.byID[item.ID] = item
		c.bySubject[item.Subject] = append(c.bySubject[item.Subject], *item)
	}
	for s := range c.bySubject {
		sort.Slice(c.bySubject[s], func(a, b int) bool {
			return c.bySubject[s][a].Title < c.bySubject[s][b].Title
		})
	}
	return c, nil
}

// Get implements Fetcher.
func (c *Catalog) Get(_ context.Context, id string) (*ContentItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return item, nil
}

// BySubject returns the items for a subject, sorted by title.
func (c *Catalog) BySubject(s Subject) []ContentItem {
	return c.bySubject[s]
}

// All returns every item in the catalog.
func (c *Catalog) All() []ContentItem {
	return c.items
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Merge returns a new catalog containing the receiver's items plus extra.
// Items in extra with an id already present replace the built-in version.
func (c *Catalog) Merge(extra []ContentItem) (*Catalog, error) {
	merged := make([]ContentItem, 0, len(c.items)+len(extra))
	override := make(map[string]bool, len(extra))
	for _, item := range extra {
		override[item.ID] = true
	}
	for _, item := range c.items {
		if !override[item.ID] {
			merged = append(merged, item)
		}
	}
	merged = append(merged, extra...)
	return New(merged)
}
