package usecase

import (
	"context"
	"strings"

	"collab-dashboard/internal/project"
	repo "collab-dashboard/internal/project/repository"
)

// Create validates input locally, then creates the project on behalf of the caller.
// Validation failures never reach the remote.
func (uc *implUseCase) Create(ctx context.Context, input project.CreateInput) (project.CreateOutput, error) {
	if strings.TrimSpace(input.ShortName) == "" {
		return project.CreateOutput{}, project.ErrShortNameRequired
	}
	if input.GroupID == "" {
		return project.CreateOutput{}, project.ErrGroupRequired
	}
	user, _ := uc.users.User()
	if user == nil || user.ID == 0 {
		return project.CreateOutput{}, project.ErrNotAuthenticated
	}

	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		ShortName:   input.ShortName,
		LongName:    input.LongName,
		Description: input.Description,
		Theme:       input.Theme,
		Type:        input.Type,
		License:     input.License,
		Public:      input.Public,
		GroupID:     input.GroupID,
		CreatorID:   user.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.CreateOutput{}, err
	}
	return project.CreateOutput{Project: p}, nil
}
