package usecase

import (
	"context"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/log"
)

// ListSource is the read side of the mailing list repository.
type ListSource interface {
	ListAll(ctx context.Context) ([]mailinglist.ListItem, error)
}

type implUseCase struct {
	lists    ListSource
	projects project.UseCase
	rooms    chatroom.UseCase
	l        log.Logger
}

// New creates a new dashboard UseCase implementation.
func New(lists ListSource, projects project.UseCase, rooms chatroom.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		lists:    lists,
		projects: projects,
		rooms:    rooms,
		l:        l,
	}
}
