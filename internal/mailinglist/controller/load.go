package controller

import (
	"context"

	"collab-dashboard/internal/mailinglist"
)

// Load replaces the collection with the remote one.
// On failure the page-level error is set and items are left untouched.
func (c *implController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadsInFlight++
	c.mu.Unlock()

	items, err := c.repo.ListAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadsInFlight--

	if err != nil {
		c.l.Errorf(ctx, "controller.Load ListAll: %v", err)
		c.loadErr = remoteMessage(err, msgLoadFailed)
		return err
	}

	c.items = dedupe(items)
	c.loadErr = ""
	return nil
}

// dedupe keeps the first occurrence of each assigned id. Items without an id are kept.
func dedupe(items []mailinglist.ListItem) []mailinglist.ListItem {
	seen := make(map[int64]struct{}, len(items))
	out := make([]mailinglist.ListItem, 0, len(items))
	for _, it := range items {
		if it.ID != 0 {
			if _, dup := seen[it.ID]; dup {
				continue
			}
			seen[it.ID] = struct{}{}
		}
		out = append(out, it)
	}
	return out
}
