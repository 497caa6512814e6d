package rest

import (
	"context"
	"net/http"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/pkg/apigateway"
)

func (r *implRepository) ListRooms(ctx context.Context) ([]chatroom.Room, error) {
	recs, err := r.rooms.GetAll(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRooms"), err)
		return nil, err
	}
	return toRooms(recs), nil
}

func (r *implRepository) ListRoomsByUser(ctx context.Context, userID int64) ([]chatroom.Room, error) {
	recs, err := r.rooms.GetByUser(ctx, apigateway.FormatID(userID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoomsByUser"), err)
		return nil, err
	}
	return toRooms(recs), nil
}

func (r *implRepository) CreateGeneral(ctx context.Context) (int64, error) {
	raw, err := r.gw.Call(ctx, http.MethodPost, apigateway.PathGeneralRoom, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGeneral"), err)
		return 0, err
	}

	rec, err := apigateway.DecodeRecord(raw)
	if err != nil {
		// the room exists at this point, only the echo is unreadable
		r.l.Warnf(ctx, "%s decode: %v", r.dsn("CreateGeneral"), err)
		return 0, nil
	}
	if rec == nil {
		return 0, nil
	}
	id, _ := rec.Int64("id", "idSalle")
	return id, nil
}
