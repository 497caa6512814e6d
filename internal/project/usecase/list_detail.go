package usecase

import (
	"context"

	"collab-dashboard/internal/project"
)

// List returns every project visible to the caller.
func (uc *implUseCase) List(ctx context.Context) (project.ListOutput, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListOutput{}, err
	}
	return project.ListOutput{Projects: projects}, nil
}

// Detail returns one project. Returns ErrProjectNotFound when the remote has none.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (project.DetailOutput, error) {
	p, err := uc.repo.GetProject(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetProject: %v", err)
		return project.DetailOutput{}, err
	}
	if p.ID == 0 {
		return project.DetailOutput{}, project.ErrProjectNotFound
	}
	return project.DetailOutput{Project: p}, nil
}

// ListGroups returns the groups a new project can be attached to.
func (uc *implUseCase) ListGroups(ctx context.Context) ([]project.Group, error) {
	groups, err := uc.repo.ListGroups(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListGroups ListGroups: %v", err)
		return nil, err
	}
	return groups, nil
}
