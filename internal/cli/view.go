package cli

import (
	"time"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/project"
)

type listView struct {
	ID              int64      `json:"id,omitempty"`
	Name            string     `json:"name"`
	ContactAddress  string     `json:"contactAddress,omitempty"`
	Description     string     `json:"description,omitempty"`
	SubscriberCount int        `json:"subscriberCount"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

func newListView(it mailinglist.ListItem) listView {
	return listView{
		ID:              it.ID,
		Name:            it.Name,
		ContactAddress:  it.ContactAddress,
		Description:     it.Description,
		SubscriberCount: it.SubscriberCount,
		Status:          string(it.Status),
		CreatedAt:       it.CreatedAt,
	}
}

func newListViews(items []mailinglist.ListItem) []listView {
	out := make([]listView, len(items))
	for i, it := range items {
		out[i] = newListView(it)
	}
	return out
}

type noticeView struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func newNoticeView(n *mailinglist.Notice) *noticeView {
	if n == nil {
		return nil
	}
	return &noticeView{Kind: string(n.Kind), Title: n.Title, Message: n.Message}
}

type projectView struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	ShortName   string `json:"shortName"`
	Description string `json:"description,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
	Status      string `json:"status,omitempty"`
	Public      *bool  `json:"public,omitempty"`
	MemberCount *int   `json:"memberCount,omitempty"`
	TaskCount   *int   `json:"taskCount,omitempty"`
}

func newProjectView(p project.Project) projectView {
	return projectView{
		ID:          p.ID,
		Label:       p.Label(),
		ShortName:   p.ShortName,
		Description: p.Description,
		GroupID:     p.GroupID,
		Status:      p.Status,
		Public:      p.Public,
		MemberCount: p.MemberCount,
		TaskCount:   p.TaskCount,
	}
}

type roomView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Encrypted   bool   `json:"encrypted"`
	LastMessage string `json:"lastMessage,omitempty"`
	MemberCount int    `json:"memberCount"`
}

func newRoomView(r chatroom.Room) roomView {
	return roomView{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Encrypted:   r.Encrypted,
		LastMessage: r.LastMessage,
		MemberCount: r.MemberCount,
	}
}
