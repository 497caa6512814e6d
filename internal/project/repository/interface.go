package repository

import (
	"context"

	"collab-dashboard/internal/project"
)

// Repository is the data access contract for projects and their groups.
type Repository interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	// GetProject returns a zero-value Project (ID == 0) when the remote has no such project.
	GetProject(ctx context.Context, id int64) (project.Project, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (project.Project, error)
	ListGroups(ctx context.Context) ([]project.Group, error)
}
