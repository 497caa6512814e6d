package http

import (
	"collab-dashboard/internal/chatroom"
)

type listReq struct {
	Scope string `form:"scope"`
}

func (r listReq) toScope() chatroom.Scope {
	return chatroom.Scope(r.Scope)
}

type roomResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Encrypted   bool   `json:"encrypted"`
	LastMessage string `json:"last_message,omitempty"`
	MemberCount int    `json:"member_count"`
}

type listResp struct {
	Rooms []roomResp `json:"rooms"`
}

func (h *handler) newListResp(out chatroom.ListOutput) listResp {
	rooms := make([]roomResp, len(out.Rooms))
	for i, r := range out.Rooms {
		rooms[i] = roomResp{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Type:        r.Type,
			Encrypted:   r.Encrypted,
			LastMessage: r.LastMessage,
			MemberCount: r.MemberCount,
		}
	}
	return listResp{Rooms: rooms}
}

type createGeneralResp struct {
	ID int64 `json:"id,omitempty"`
}
