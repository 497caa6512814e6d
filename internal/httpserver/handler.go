package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"collab-dashboard/internal/chatroom"
	chatroomHTTP "collab-dashboard/internal/chatroom/delivery/http"
	"collab-dashboard/internal/dashboard"
	dashboardHTTP "collab-dashboard/internal/dashboard/delivery/http"
	"collab-dashboard/internal/mailinglist"
	mailinglistHTTP "collab-dashboard/internal/mailinglist/delivery/http"
	"collab-dashboard/internal/middleware"
	"collab-dashboard/internal/model"
	"collab-dashboard/internal/project"
	projectHTTP "collab-dashboard/internal/project/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	mw := middleware.New(srv.l, srv.sessions, srv.defaultToken, srv.rateLimitPerMin)
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
//
// Every handler resolves its use case from the client session at request time:
//  1. the Session middleware binds the request to a session.Session
//  2. the handler's resolver picks the domain out of it
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", mw.RateLimit(), mw.Session())

	// Mailing lists
	lists := mailinglistHTTP.New(srv.l, func(c *gin.Context) (mailinglist.Controller, bool) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			return nil, false
		}
		return sess.MailingLists, true
	})
	mailinglistHTTP.RegisterRoutes(api.Group("/mailing-lists"), lists)

	// Projects & groups
	projects := projectHTTP.New(srv.l, func(c *gin.Context) (project.UseCase, bool) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			return nil, false
		}
		return sess.Projects, true
	})
	projectHTTP.RegisterRoutes(api.Group("/projects"), api.Group("/groups"), projects)

	// Rooms
	rooms := chatroomHTTP.New(srv.l, func(c *gin.Context) (chatroom.UseCase, bool) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			return nil, false
		}
		return sess.Rooms, true
	})
	chatroomHTTP.RegisterRoutes(api.Group("/rooms"), rooms)

	// Dashboard
	summary := dashboardHTTP.New(srv.l, func(c *gin.Context) (dashboard.UseCase, bool) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			return nil, false
		}
		return sess.Dashboard, true
	})
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), summary)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
