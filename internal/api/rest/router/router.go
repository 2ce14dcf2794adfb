package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/tasklist-server/internal/api/rest/handler"
	"github.com/dtroode/tasklist-server/internal/api/rest/middleware"
	"github.com/dtroode/tasklist-server/internal/api/rest/response"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// AuthService covers the authentication operations used by handlers and middleware.
type AuthService interface {
	handler.AuthService
	middleware.TokenVerifier
}

// Router represents the REST router for the task list API.
// It wires handlers, middleware and CORS policy into a chi mux.
type Router struct {
	authService    AuthService
	taskService    handler.TaskService
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new REST Router instance.
//
// Parameters:
//   - authService: The registration, login and token verification service
//   - taskService: The task management service
//   - contextManager: Stores the authenticated identity on request contexts
//   - allowedOrigins: Origins permitted by the CORS policy
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService AuthService,
	taskService handler.TaskService,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
//
// Returns the configured chi mux.
func (r *Router) Register() *chi.Mux {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)
	mux.Use(chimw.RequestSize(maxBodyBytes))

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	mux.Route("/api", func(api chi.Router) {
		api.Get("/health", handler.Health)
		r.registerAuthRoutes(api)
		r.registerTaskRoutes(api, authenticate)
	})

	return mux
}

func (r *Router) registerAuthRoutes(api chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	api.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", authHandler.Register)
		ar.Post("/login", authHandler.Login)
	})
}

func (r *Router) registerTaskRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	api.Route("/tasks", func(tr chi.Router) {
		tr.Use(authenticate.Handle)
		tr.Get("/", taskHandler.List)
		tr.Post("/", taskHandler.Create)
		tr.Put("/{id}", taskHandler.Update)
		tr.Delete("/{id}", taskHandler.Delete)
	})
}
