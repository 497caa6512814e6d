package repository

import (
	"context"

	"collab-dashboard/internal/chatroom"
)

// Repository is the remote data access contract for discussion rooms.
type Repository interface {
	ListRooms(ctx context.Context) ([]chatroom.Room, error)
	ListRoomsByUser(ctx context.Context, userID int64) ([]chatroom.Room, error)
	// CreateGeneral asks the remote to create the general room and returns its id, 0 if none was sent back.
	CreateGeneral(ctx context.Context) (int64, error)
}
