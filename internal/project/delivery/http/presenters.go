package http

import (
	"collab-dashboard/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	ShortName   string `json:"short_name"  binding:"max=50"`
	LongName    string `json:"long_name"   binding:"max=255"`
	Description string `json:"description" binding:"max=2000"`
	Theme       string `json:"theme"`
	Type        string `json:"type"`
	License     string `json:"license"`
	Public      bool   `json:"public"`
	GroupID     string `json:"group_id"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() project.CreateInput {
	return project.CreateInput{
		ShortName:   r.ShortName,
		LongName:    r.LongName,
		Description: r.Description,
		Theme:       r.Theme,
		Type:        r.Type,
		License:     r.License,
		Public:      r.Public,
		GroupID:     r.GroupID,
	}
}

// ---

type detailReq struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// --- Response DTOs ---

type projectResp struct {
	ID             int64  `json:"id"`
	Label          string `json:"label"`
	ShortName      string `json:"short_name"`
	LongName       string `json:"long_name,omitempty"`
	Description    string `json:"description,omitempty"`
	Theme          string `json:"theme,omitempty"`
	Type           string `json:"type,omitempty"`
	License        string `json:"license,omitempty"`
	Public         *bool  `json:"public,omitempty"`
	GroupID        string `json:"group_id,omitempty"`
	Status         string `json:"status,omitempty"`
	CompletionRate *int   `json:"completion_rate,omitempty"`
	MemberCount    *int   `json:"member_count,omitempty"`
	TaskCount      *int   `json:"task_count,omitempty"`
}

func newProjectResp(p project.Project) projectResp {
	return projectResp{
		ID:             p.ID,
		Label:          p.Label(),
		ShortName:      p.ShortName,
		LongName:       p.LongName,
		Description:    p.Description,
		Theme:          p.Theme,
		Type:           p.Type,
		License:        p.License,
		Public:         p.Public,
		GroupID:        p.GroupID,
		Status:         p.Status,
		CompletionRate: p.CompletionRate,
		MemberCount:    p.MemberCount,
		TaskCount:      p.TaskCount,
	}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{Projects: projects}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(out project.DetailOutput) detailResp {
	return detailResp{Project: newProjectResp(out.Project)}
}

type createResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateOutput) createResp {
	return createResp{Project: newProjectResp(out.Project)}
}

type groupResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
}

type groupsResp struct {
	Groups []groupResp `json:"groups"`
}

func (h *handler) newGroupsResp(groups []project.Group) groupsResp {
	out := make([]groupResp, len(groups))
	for i, g := range groups {
		out[i] = groupResp{ID: g.ID, Name: g.Name, ShortName: g.ShortName}
	}
	return groupsResp{Groups: out}
}
