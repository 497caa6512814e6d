package mailinglist

import "context"

// Controller is the list-view state machine for the mailing list screen.
// Every mutation of Items is applied only after the remote call resolves.
type Controller interface {
	Load(ctx context.Context) error
	Snapshot() Snapshot
	Filtered() []ListItem

	SetSearch(text string)
	SetStatusFilter(status Status) error

	OpenCreateDialog(ctx context.Context)
	CloseCreateDialog()
	SetDraft(d Draft)
	Create(ctx context.Context) (ListItem, error)

	ToggleStatus(ctx context.Context, id int64) (ListItem, error)
	Remove(ctx context.Context, id int64, confirm ConfirmFunc) error
	DismissNotice()
}
