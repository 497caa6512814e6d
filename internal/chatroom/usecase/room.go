package usecase

import (
	"context"
	"errors"

	"collab-dashboard/internal/chatroom"
	"collab-dashboard/pkg/apigateway"
)

// List returns every room, or only the caller's rooms for ScopeMine.
// An anonymous caller has no rooms of their own.
func (uc *implUseCase) List(ctx context.Context, scope chatroom.Scope) (chatroom.ListOutput, error) {
	if !scope.Valid() {
		return chatroom.ListOutput{}, chatroom.ErrInvalidScope
	}

	if scope != chatroom.ScopeMine {
		rooms, err := uc.repo.ListRooms(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListRooms: %v", err)
			return chatroom.ListOutput{}, err
		}
		return chatroom.ListOutput{Rooms: rooms}, nil
	}

	me, err := uc.me.Me(ctx)
	if errors.Is(err, apigateway.ErrUnauthenticated) {
		return chatroom.ListOutput{Rooms: []chatroom.Room{}}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Me: %v", err)
		return chatroom.ListOutput{}, err
	}
	if me == nil || me.ID == 0 {
		return chatroom.ListOutput{Rooms: []chatroom.Room{}}, nil
	}

	rooms, err := uc.repo.ListRoomsByUser(ctx, me.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRoomsByUser: %v", err)
		return chatroom.ListOutput{}, err
	}
	return chatroom.ListOutput{Rooms: rooms}, nil
}

// CreateGeneral creates the organisation-wide room.
func (uc *implUseCase) CreateGeneral(ctx context.Context) (chatroom.CreateGeneralOutput, error) {
	id, err := uc.repo.CreateGeneral(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateGeneral CreateGeneral: %v", err)
		return chatroom.CreateGeneralOutput{}, err
	}
	return chatroom.CreateGeneralOutput{ID: id}, nil
}
