package repository

import (
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/model"
)

// CreateOptions holds the parameters for creating a mailing list.
type CreateOptions struct {
	Name           string
	ContactAddress string
	Description    string
	Status         mailinglist.Status
	AccessType     mailinglist.AccessType
	SendPermission mailinglist.SendPermission
	ProjectID      int64 // 0 means none
	Creator        model.User
}
