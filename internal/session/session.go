package session

import (
	"collab-dashboard/internal/auth"
	"collab-dashboard/internal/chatroom"
	"collab-dashboard/internal/dashboard"
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/project"
)

// Session is everything one client works with: its identity, its mailing list
// view state and the use cases bound to its bearer token.
type Session struct {
	ID    string
	Token string

	User         *auth.Session
	MailingLists mailinglist.Controller
	Projects     project.UseCase
	Rooms        chatroom.UseCase
	Dashboard    dashboard.UseCase
}
