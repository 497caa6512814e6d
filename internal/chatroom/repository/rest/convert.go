package rest

import (
	"collab-dashboard/internal/chatroom"
	"collab-dashboard/pkg/apigateway"
)

func toRooms(recs []apigateway.RawRecord) []chatroom.Room {
	out := make([]chatroom.Room, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRoom(rec))
	}
	return out
}

func toRoom(rec apigateway.RawRecord) chatroom.Room {
	id, _ := rec.Int64("id", "idSalle")
	name, _ := rec.String("nom", "name")
	desc, _ := rec.String("description")
	typ, _ := rec.String("type")
	encrypted, _ := rec.Bool("chiffree", "encrypted")
	last, _ := rec.String("dernierMessage")

	count, ok := rec.Int64("nombreMembres")
	if !ok {
		if members, ok := rec.Slice("membres"); ok {
			count = int64(len(members))
		}
	}
	if count < 0 {
		count = 0
	}

	return chatroom.Room{
		ID:          id,
		Name:        name,
		Description: desc,
		Type:        typ,
		Encrypted:   encrypted,
		LastMessage: last,
		MemberCount: int(count),
	}
}
