package controller

import (
	"context"
	"sync"

	"collab-dashboard/internal/auth"
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/repository"
	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/log"
)

// ProjectLister feeds the association selector of the create dialog.
type ProjectLister interface {
	List(ctx context.Context) (project.ListOutput, error)
}

// implController is the private implementation of mailinglist.Controller.
//
// mu guards the state only. Remote calls run without it, and each operation
// re-acquires it to apply its result to whatever items hold at that moment,
// so overlapping operations resolve last-resolved-wins.
type implController struct {
	repo     repository.Repository
	projects ProjectLister
	users    auth.UserContext
	l        log.Logger

	mu              sync.Mutex
	items           []mailinglist.ListItem
	searchText      string
	statusFilter    mailinglist.Status
	loadsInFlight   int
	loadErr         string
	draft           mailinglist.Draft
	dialogOpen      bool
	validationErr   string
	notice          *mailinglist.Notice
	projectOptions  []project.Project
	projectsLoading bool
}

var _ mailinglist.Controller = (*implController)(nil)

// New creates a controller with an empty collection. Call Load to populate it.
func New(repo repository.Repository, projects ProjectLister, users auth.UserContext, l log.Logger) *implController {
	return &implController{
		repo:     repo,
		projects: projects,
		users:    users,
		l:        l,
		items:    []mailinglist.ListItem{},
		draft:    mailinglist.NewDraft(),
	}
}
