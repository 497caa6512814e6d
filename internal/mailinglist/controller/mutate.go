package controller

import (
	"context"
	"fmt"

	"collab-dashboard/internal/mailinglist"
)

// ToggleStatus flips the status of item id once the remote accepts it.
// Order is preserved. A zero ListItem with a nil error means the item
// disappeared from the collection while the call was in flight.
func (c *implController) ToggleStatus(ctx context.Context, id int64) (mailinglist.ListItem, error) {
	c.mu.Lock()
	idx := indexOf(c.items, id)
	if idx < 0 {
		c.mu.Unlock()
		return mailinglist.ListItem{}, mailinglist.ErrItemNotFound
	}
	next := !c.items[idx].Active
	c.mu.Unlock()

	if err := c.repo.SetActive(ctx, id, next); err != nil {
		c.l.Errorf(ctx, "controller.ToggleStatus repo.SetActive: %v", err)
		c.mu.Lock()
		c.notice = errorNotice(remoteMessage(err, msgToggleFailed))
		c.mu.Unlock()
		return mailinglist.ListItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = successNotice(titleUpdated, fmt.Sprintf("Statut mis à jour: %s", mailinglist.StatusFromActive(next)))

	idx = indexOf(c.items, id)
	if idx < 0 {
		return mailinglist.ListItem{}, nil
	}
	items := append([]mailinglist.ListItem(nil), c.items...)
	items[idx] = items[idx].WithActive(next)
	c.items = items
	return items[idx], nil
}

// Remove deletes item id after confirmation. A nil confirm counts as a refusal.
func (c *implController) Remove(ctx context.Context, id int64, confirm mailinglist.ConfirmFunc) error {
	if confirm == nil || !confirm(ctx, promptDelete) {
		return mailinglist.ErrNotConfirmed
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		c.l.Errorf(ctx, "controller.Remove repo.Delete: %v", err)
		c.mu.Lock()
		c.notice = errorNotice(remoteMessage(err, msgDeleteFailed))
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]mailinglist.ListItem, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	c.items = items
	c.notice = successNotice(titleDeleted, "La liste a été supprimée.")
	return nil
}

func indexOf(items []mailinglist.ListItem, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
