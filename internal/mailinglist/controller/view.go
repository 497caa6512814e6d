package controller

import (
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/project"
)

// Filtered returns the derived view for the current search and status filter.
func (c *implController) Filtered() []mailinglist.ListItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mailinglist.Derive(c.items, c.searchText, c.statusFilter)
}

func (c *implController) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchText = text
}

func (c *implController) SetStatusFilter(status mailinglist.Status) error {
	if !status.ValidFilter() {
		return mailinglist.ErrInvalidStatus
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusFilter = status
	return nil
}

func (c *implController) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

// Snapshot copies the state so callers can render it without holding the lock.
func (c *implController) Snapshot() mailinglist.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := mailinglist.Snapshot{
		Items:           append([]mailinglist.ListItem(nil), c.items...),
		Filtered:        mailinglist.Derive(c.items, c.searchText, c.statusFilter),
		SearchText:      c.searchText,
		StatusFilter:    c.statusFilter,
		Loading:         c.loadsInFlight > 0,
		Error:           c.loadErr,
		Draft:           c.draft,
		DialogOpen:      c.dialogOpen,
		ValidationError: c.validationErr,
		Projects:        append([]project.Project(nil), c.projectOptions...),
		ProjectsLoading: c.projectsLoading,
	}
	if snap.Items == nil {
		snap.Items = []mailinglist.ListItem{}
	}
	if c.notice != nil {
		n := *c.notice
		snap.Notice = &n
	}
	return snap
}
