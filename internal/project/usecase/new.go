package usecase

import (
	"collab-dashboard/internal/auth"
	"collab-dashboard/internal/project/repository"
	"collab-dashboard/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users auth.UserContext
	l     log.Logger
}

// New creates a new project UseCase implementation.
func New(repo repository.Repository, users auth.UserContext, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		l:     l,
	}
}
