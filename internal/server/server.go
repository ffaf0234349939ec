package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// Server provides HTTP handlers for the task manager backend.
type Server struct {
	engine    *gin.Engine
	store     storage.Store
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(store storage.Store, logger *slog.Logger, staticDir string, corsOrigins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api/healthz"))

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		router.Use(cors.New(cfg))
	}

	srv := &Server{
		engine:    router,
		store:     store,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together. Collection
// mutations address rows through the ?id= query parameter; tasks additionally
// get path-parameter routes for clients that prefer them.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.PUT("/projects", s.handleUpdateProject)
		api.DELETE("/projects", s.handleDeleteProject)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks", s.handleUpdateTaskByQuery)
		api.DELETE("/tasks", s.handleDeleteTaskByQuery)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PUT("/tasks/:id", s.handleUpdateTaskByPath)
		api.DELETE("/tasks/:id", s.handleDeleteTaskByPath)
		api.PATCH("/tasks/:id/status", s.handleUpdateTaskStatus)

		api.GET("/upcoming-tasks", s.handleListUpcomingTasks)
		api.POST("/upcoming-tasks", s.handleCreateUpcomingTask)
		api.PUT("/upcoming-tasks", s.handleUpdateUpcomingTask)
		api.DELETE("/upcoming-tasks", s.handleDeleteUpcomingTask)

		api.GET("/calendar-events", s.handleListCalendarEvents)
		api.POST("/calendar-events", s.handleCreateCalendarEvent)
		api.PUT("/calendar-events", s.handleUpdateCalendarEvent)
		api.DELETE("/calendar-events", s.handleDeleteCalendarEvent)

		api.GET("/board", s.handleBoard)
		api.GET("/stats", s.handleStats)
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
