package mailinglist

import (
	"context"
	"time"

	"collab-dashboard/internal/project"
)

// Status is the lifecycle state of a mailing list.
type Status string

const (
	StatusActive   Status = "ACTIF"
	StatusInactive Status = "INACTIF"
)

// StatusFromActive maps the remote boolean onto Status.
func StatusFromActive(active bool) Status {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// ValidFilter reports whether s may be used as a status filter. "" means no filter.
func (s Status) ValidFilter() bool {
	return s == "" || s == StatusActive || s == StatusInactive
}

// AccessType controls who may subscribe.
type AccessType string

const (
	AccessPrivate AccessType = "PRIVE"
	AccessPublic  AccessType = "PUBLIC"
)

// SendPermission controls who may post to the list.
type SendPermission string

const (
	SendEveryone SendPermission = "TOUS"
	SendMembers  SendPermission = "MEMBRES"
	SendAdmins   SendPermission = "ADMINISTRATEURS"
)

// ListItem is the normalized mailing list record.
// Active always equals (Status == StatusActive).
type ListItem struct {
	ID              int64 // 0 until the remote assigns one
	Name            string
	ContactAddress  string
	Description     string
	SubscriberCount int
	Status          Status
	Active          bool
	CreatedAt       *time.Time
}

// WithActive returns a copy of i with Status and Active both set from active.
func (i ListItem) WithActive(active bool) ListItem {
	i.Active = active
	i.Status = StatusFromActive(active)
	return i
}

// Draft is the create-form staging record. It is never persisted partially.
type Draft struct {
	Name           string
	ContactAddress string
	Description    string
	Status         Status
	AccessType     AccessType
	SendPermission SendPermission
	ProjectID      int64 // 0 means no associated project
}

// NewDraft returns the empty create form with its defaults.
func NewDraft() Draft {
	return Draft{
		Status:         StatusActive,
		AccessType:     AccessPrivate,
		SendPermission: SendMembers,
	}
}

// NoticeKind distinguishes success and failure notifications.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a dismissible, transient notification.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Snapshot is a point-in-time copy of the controller state for rendering.
type Snapshot struct {
	Items           []ListItem
	Filtered        []ListItem
	SearchText      string
	StatusFilter    Status
	Loading         bool
	Error           string // page-level load failure, "" when none
	Draft           Draft
	DialogOpen      bool
	ValidationError string // inline create-form message, "" when none
	Notice          *Notice
	Projects        []project.Project
	ProjectsLoading bool
}

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(ctx context.Context, prompt string) bool
