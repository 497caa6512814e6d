package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/repository"
)

// Create validates the draft, submits it and prepends the echoed record.
// Validation failures never reach the network.
func (c *implController) Create(ctx context.Context) (mailinglist.ListItem, error) {
	c.mu.Lock()
	draft := c.draft
	if strings.TrimSpace(draft.Name) == "" {
		c.validationErr = mailinglist.ErrNameRequired.Error()
		c.mu.Unlock()
		return mailinglist.ListItem{}, mailinglist.ErrNameRequired
	}
	user, _ := c.users.User()
	if user == nil || user.ID == 0 {
		c.validationErr = mailinglist.ErrNotAuthenticated.Error()
		c.mu.Unlock()
		return mailinglist.ListItem{}, mailinglist.ErrNotAuthenticated
	}
	c.validationErr = ""
	c.mu.Unlock()

	item, err := c.repo.Create(ctx, repository.CreateOptions{
		Name:           draft.Name,
		ContactAddress: draft.ContactAddress,
		Description:    draft.Description,
		Status:         draft.Status,
		AccessType:     draft.AccessType,
		SendPermission: draft.SendPermission,
		ProjectID:      draft.ProjectID,
		Creator:        *user,
	})
	if errors.Is(err, repository.ErrNoRecordEchoed) {
		c.mu.Lock()
		c.resetDialogLocked()
		c.notice = successNotice(titleCreated, fmt.Sprintf("%s a été créée.", draft.Name))
		c.mu.Unlock()

		// nothing to prepend, resync instead
		if err := c.Load(ctx); err != nil {
			c.l.Warnf(ctx, "controller.Create Load: %v", err)
		}
		return mailinglist.ListItem{}, nil
	}
	if err != nil {
		c.l.Errorf(ctx, "controller.Create repo.Create: %v", err)
		c.mu.Lock()
		c.notice = errorNotice(createFailureMessage(err))
		c.mu.Unlock()
		return mailinglist.ListItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = dedupe(append([]mailinglist.ListItem{item}, c.items...))
	c.resetDialogLocked()
	name := item.Name
	if name == "" {
		name = draft.Name
	}
	c.notice = successNotice(titleCreated, fmt.Sprintf("%s a été créée.", name))
	return item, nil
}
