package controller

import (
	"context"

	"collab-dashboard/internal/mailinglist"
)

// OpenCreateDialog opens the form, prefills it from the caller and refreshes
// the project selector. A failed project fetch is logged and otherwise ignored.
func (c *implController) OpenCreateDialog(ctx context.Context) {
	c.mu.Lock()
	c.dialogOpen = true
	c.validationErr = ""
	if user, _ := c.users.User(); user != nil {
		// never overwrite what the user already typed
		if c.draft.Name == "" {
			c.draft.Name = user.DisplayName()
		}
		if c.draft.ContactAddress == "" {
			c.draft.ContactAddress = user.Email
		}
	}
	c.projectsLoading = true
	c.mu.Unlock()

	out, err := c.projects.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.projectsLoading = false
	if err != nil {
		c.l.Warnf(ctx, "controller.OpenCreateDialog projects.List: %v", err)
		return
	}
	c.projectOptions = out.Projects
}

// CloseCreateDialog discards the draft.
func (c *implController) CloseCreateDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetDialogLocked()
}

func (c *implController) SetDraft(d mailinglist.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
	c.validationErr = ""
}

func (c *implController) resetDialogLocked() {
	c.dialogOpen = false
	c.draft = mailinglist.NewDraft()
	c.validationErr = ""
}
