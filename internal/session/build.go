package session

import (
	"collab-dashboard/internal/auth"
	chatroomRepo "collab-dashboard/internal/chatroom/repository/rest"
	chatroomUC "collab-dashboard/internal/chatroom/usecase"
	dashboardUC "collab-dashboard/internal/dashboard/usecase"
	"collab-dashboard/internal/mailinglist/controller"
	mailinglistRepo "collab-dashboard/internal/mailinglist/repository/rest"
	projectRepo "collab-dashboard/internal/project/repository/rest"
	projectUC "collab-dashboard/internal/project/usecase"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// NewBuilder returns a BuildFunc that wires every domain over gw, authenticated with the session token.
// An empty token keeps gw's own credentials.
func NewBuilder(gw *apigateway.Client, l log.Logger) BuildFunc {
	return func(id, token string) *Session {
		client := gw
		if token != "" {
			client = gw.WithToken(token)
		}

		// 1. Identity
		user := auth.NewSession(client, l)

		// 2. Repositories
		lists := mailinglistRepo.New(client, l)
		projects := projectRepo.New(client, l)
		rooms := chatroomRepo.New(client, l)

		// 3. UseCases
		projectsUC := projectUC.New(projects, user, l)
		roomsUC := chatroomUC.New(rooms, client, l)

		return &Session{
			ID:           id,
			Token:        token,
			User:         user,
			MailingLists: controller.New(lists, projectsUC, user, l),
			Projects:     projectsUC,
			Rooms:        roomsUC,
			Dashboard:    dashboardUC.New(lists, projectsUC, roomsUC, l),
		}
	}
}
