package usecase

import (
	"collab-dashboard/internal/auth"
	"collab-dashboard/internal/chatroom/repository"
	"collab-dashboard/pkg/log"
)

// implUseCase is the private implementation of chatroom.UseCase.
type implUseCase struct {
	repo repository.Repository
	me   auth.IdentityFetcher
	l    log.Logger
}

// New creates a new chat room UseCase implementation.
func New(repo repository.Repository, me auth.IdentityFetcher, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		me:   me,
		l:    l,
	}
}
