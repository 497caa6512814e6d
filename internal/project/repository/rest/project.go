package rest

import (
	"context"

	"collab-dashboard/internal/project"
	"collab-dashboard/internal/project/repository"
	"collab-dashboard/pkg/apigateway"
)

func (r *implRepository) ListProjects(ctx context.Context) ([]project.Project, error) {
	recs, err := r.projects.GetAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, err
	}

	out := make([]project.Project, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProject(rec))
	}
	return out, nil
}

func (r *implRepository) GetProject(ctx context.Context, id int64) (project.Project, error) {
	rec, err := r.projects.GetByID(ctx, apigateway.FormatID(id))
	if apigateway.IsNotFound(err) {
		return project.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProject"), err)
		return project.Project{}, err
	}
	if rec == nil {
		return project.Project{}, nil
	}
	return toProject(rec), nil
}

func (r *implRepository) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (project.Project, error) {
	rec, err := r.projects.Create(ctx, buildCreatePayload(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return project.Project{}, err
	}
	if rec == nil {
		// Some deployments answer 201 with no body.
		return project.Project{
			ShortName:   opt.ShortName,
			LongName:    opt.LongName,
			Description: opt.Description,
			GroupID:     opt.GroupID,
		}, nil
	}
	return toProject(rec), nil
}

func (r *implRepository) ListGroups(ctx context.Context) ([]project.Group, error) {
	recs, err := r.groups.GetAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroups"), err)
		return nil, err
	}

	out := make([]project.Group, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toGroup(rec))
	}
	return out, nil
}
