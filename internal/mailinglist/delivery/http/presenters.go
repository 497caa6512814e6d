package http

import (
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/response"
)

// --- Request DTOs ---

type draftReq struct {
	Name           string `json:"name"            binding:"max=255"`
	ContactAddress string `json:"contact_address" binding:"omitempty,max=255"`
	Description    string `json:"description"     binding:"max=2000"`
	Status         string `json:"status"          binding:"omitempty,oneof=ACTIF INACTIF"`
	AccessType     string `json:"access_type"     binding:"omitempty,oneof=PRIVE PUBLIC"`
	SendPermission string `json:"send_permission" binding:"omitempty,oneof=TOUS MEMBRES ADMINISTRATEURS"`
	ProjectID      int64  `json:"project_id"      binding:"min=0"`
}

func (r draftReq) validate() error { return nil }

// toDraft fills the unset enums with the form defaults.
func (r draftReq) toDraft() mailinglist.Draft {
	d := mailinglist.NewDraft()
	d.Name = r.Name
	d.ContactAddress = r.ContactAddress
	d.Description = r.Description
	d.ProjectID = r.ProjectID
	if r.Status != "" {
		d.Status = mailinglist.Status(r.Status)
	}
	if r.AccessType != "" {
		d.AccessType = mailinglist.AccessType(r.AccessType)
	}
	if r.SendPermission != "" {
		d.SendPermission = mailinglist.SendPermission(r.SendPermission)
	}
	return d
}

// ---

type filterReq struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

func (r filterReq) validate() error {
	if !mailinglist.Status(r.Status).ValidFilter() {
		return mailinglist.ErrInvalidStatus
	}
	return nil
}

// ---

type idReq struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type removeReq struct {
	ID      int64 `uri:"id" binding:"required,min=1"`
	Confirm bool  `form:"confirm"`
}

// --- Response DTOs ---

type itemResp struct {
	ID              int64              `json:"id,omitempty"`
	Name            string             `json:"name"`
	ContactAddress  string             `json:"contact_address"`
	Description     string             `json:"description,omitempty"`
	SubscriberCount int                `json:"subscriber_count"`
	Status          string             `json:"status"`
	Active          bool               `json:"active"`
	CreatedAt       *response.DateTime `json:"created_at,omitempty"`
}

func newItemResp(it mailinglist.ListItem) itemResp {
	resp := itemResp{
		ID:              it.ID,
		Name:            it.Name,
		ContactAddress:  it.ContactAddress,
		Description:     it.Description,
		SubscriberCount: it.SubscriberCount,
		Status:          string(it.Status),
		Active:          it.Active,
	}
	if it.CreatedAt != nil {
		dt := response.DateTime(*it.CreatedAt)
		resp.CreatedAt = &dt
	}
	return resp
}

func newItemResps(items []mailinglist.ListItem) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type draftResp struct {
	Name           string `json:"name"`
	ContactAddress string `json:"contact_address"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	AccessType     string `json:"access_type"`
	SendPermission string `json:"send_permission"`
	ProjectID      int64  `json:"project_id,omitempty"`
}

type noticeResp struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type projectOptionResp struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type dialogResp struct {
	Open            bool                `json:"open"`
	Draft           draftResp           `json:"draft"`
	ValidationError string              `json:"validation_error,omitempty"`
	Projects        []projectOptionResp `json:"projects"`
	ProjectsLoading bool                `json:"projects_loading"`
}

type snapshotResp struct {
	Items        []itemResp  `json:"items"`
	Filtered     []itemResp  `json:"filtered"`
	SearchText   string      `json:"search_text"`
	StatusFilter string      `json:"status_filter"`
	Loading      bool        `json:"loading"`
	Error        string      `json:"error,omitempty"`
	Dialog       dialogResp  `json:"dialog"`
	Notice       *noticeResp `json:"notice,omitempty"`
}

func (h *handler) newSnapshotResp(s mailinglist.Snapshot) snapshotResp {
	projects := make([]projectOptionResp, len(s.Projects))
	for i, p := range s.Projects {
		projects[i] = projectOptionResp{ID: p.ID, Label: p.Label()}
	}

	resp := snapshotResp{
		Items:        newItemResps(s.Items),
		Filtered:     newItemResps(s.Filtered),
		SearchText:   s.SearchText,
		StatusFilter: string(s.StatusFilter),
		Loading:      s.Loading,
		Error:        s.Error,
		Dialog: dialogResp{
			Open: s.DialogOpen,
			Draft: draftResp{
				Name:           s.Draft.Name,
				ContactAddress: s.Draft.ContactAddress,
				Description:    s.Draft.Description,
				Status:         string(s.Draft.Status),
				AccessType:     string(s.Draft.AccessType),
				SendPermission: string(s.Draft.SendPermission),
				ProjectID:      s.Draft.ProjectID,
			},
			ValidationError: s.ValidationError,
			Projects:        projects,
			ProjectsLoading: s.ProjectsLoading,
		},
	}
	if s.Notice != nil {
		resp.Notice = &noticeResp{Kind: string(s.Notice.Kind), Title: s.Notice.Title, Message: s.Notice.Message}
	}
	return resp
}

type itemActionResp struct {
	Item     *itemResp    `json:"item,omitempty"`
	Snapshot snapshotResp `json:"snapshot"`
}

func (h *handler) newItemActionResp(it mailinglist.ListItem, s mailinglist.Snapshot) itemActionResp {
	resp := itemActionResp{Snapshot: h.newSnapshotResp(s)}
	if it != (mailinglist.ListItem{}) {
		ir := newItemResp(it)
		resp.Item = &ir
	}
	return resp
}
