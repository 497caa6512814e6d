package repository

import (
	"context"

	"collab-dashboard/internal/mailinglist"
)

// Repository is the remote data access contract for mailing lists.
// Every returned ListItem is already normalized.
type Repository interface {
	ListAll(ctx context.Context) ([]mailinglist.ListItem, error)
	// Create returns ErrNoRecordEchoed when the remote accepted the list but sent nothing back.
	Create(ctx context.Context, opt CreateOptions) (mailinglist.ListItem, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}
